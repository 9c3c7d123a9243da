package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/internal/service/insights"
	"github.com/heartmarshall/focuslog-backend/internal/service/settings"
	"github.com/heartmarshall/focuslog-backend/internal/service/timer"
)

type sessionResponse struct {
	ID          uuid.UUID  `json:"id"`
	CategoryID  uuid.UUID  `json:"categoryId"`
	Title       string     `json:"title"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end"`
	DurationMin int        `json:"durationMin"`
	Quality     *float64   `json:"quality"`
	Tags        []string   `json:"tags"`
	NoteID      *uuid.UUID `json:"noteId"`
	Open        bool       `json:"open"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Title:       s.Title,
		Start:       s.Start,
		End:         s.End,
		DurationMin: s.DurationMin,
		Quality:     s.Quality,
		Tags:        nonNil(s.Tags),
		NoteID:      s.NoteID,
		Open:        s.IsOpen(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSessionResponses(list []*domain.Session) []sessionResponse {
	out := make([]sessionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSessionResponse(s))
	}
	return out
}

type activeResponse struct {
	Session        *sessionResponse `json:"session"`
	ElapsedMin     *int             `json:"elapsedMin,omitempty"`
	ElapsedSeconds *int64           `json:"elapsedSeconds,omitempty"`
}

func toActiveResponse(a *timer.ActiveSession) activeResponse {
	if a == nil {
		return activeResponse{}
	}
	s := toSessionResponse(a.Session)
	s.DurationMin = a.ElapsedMin
	secs := int64(a.Elapsed / time.Second)
	return activeResponse{Session: &s, ElapsedMin: &a.ElapsedMin, ElapsedSeconds: &secs}
}

type sessionListResponse struct {
	Sessions []sessionResponse `json:"sessions"`
	Total    int               `json:"total"`
}

type categoryResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Color               string     `json:"color"`
	Type                string     `json:"type"`
	CountsTowardMastery bool       `json:"countsTowardMastery"`
	WeeklyTargetHours   *float64   `json:"weeklyTargetHours"`
	ParentID            *uuid.UUID `json:"parentId"`
	State               string     `json:"state"`
	Archived            bool       `json:"archived"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:                  c.ID,
		Name:                c.Name,
		Color:               c.Color.String(),
		Type:                c.Type.String(),
		CountsTowardMastery: c.CountsTowardMastery,
		WeeklyTargetHours:   c.WeeklyTargetHours,
		ParentID:            c.ParentID,
		State:               c.State.String(),
		Archived:            c.IsArchived(),
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func toCategoryResponses(list []*domain.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

type noteResponse struct {
	ID         uuid.UUID   `json:"id"`
	Body       string      `json:"body"`
	SessionIDs []uuid.UUID `json:"sessionIds"`
	Tags       []string    `json:"tags"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		ID:         n.ID,
		Body:       n.Body,
		SessionIDs: nonNil(n.SessionIDs),
		Tags:       nonNil(n.Tags),
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

type settingsResponse struct {
	RoundingMinutes int        `json:"roundingMinutes"`
	WeekStart       string     `json:"weekStart"`
	TimeFormat      string     `json:"timeFormat"`
	Timezone        string     `json:"timezone"`
	AIEnabled       bool       `json:"aiEnabled"`
	UpdatedAt       *time.Time `json:"updatedAt"`
}

func toSettingsResponse(s *domain.UserSettings) settingsResponse {
	resp := settingsResponse{
		RoundingMinutes: s.RoundingMinutes,
		WeekStart:       s.WeekStart.String(),
		TimeFormat:      s.TimeFormat.String(),
		Timezone:        s.Timezone,
		AIEnabled:       s.AIEnabled,
	}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = &s.UpdatedAt
	}
	return resp
}

type bootstrapResponse struct {
	Settings   settingsResponse   `json:"settings"`
	Categories []categoryResponse `json:"categories"`
	Seeded     bool               `json:"seeded"`
}

func toBootstrapResponse(res *settings.BootstrapResult) bootstrapResponse {
	return bootstrapResponse{
		Settings:   toSettingsResponse(res.Settings),
		Categories: toCategoryResponses(res.Categories),
		Seeded:     res.Seeded,
	}
}

type categoryTotalResponse struct {
	Category        categoryResponse `json:"category"`
	Minutes         int              `json:"minutes"`
	DisplayMinutes  int              `json:"displayMinutes"`
	Sessions        int              `json:"sessions"`
	TargetMinutes   *int             `json:"targetMinutes"`
	PercentOfTarget *float64         `json:"percentOfTarget"`
}

type weeklyResponse struct {
	WeekStart           time.Time               `json:"weekStart"`
	WeekEnd             time.Time               `json:"weekEnd"`
	Timezone            string                  `json:"timezone"`
	WeekStartsOn        string                  `json:"weekStartsOn"`
	RoundingMinutes     int                     `json:"roundingMinutes"`
	TotalMinutes        int                     `json:"totalMinutes"`
	DisplayTotalMinutes int                     `json:"displayTotalMinutes"`
	Categories          []categoryTotalResponse `json:"categories"`
}

func toWeeklyResponse(rep *insights.WeeklyReport) weeklyResponse {
	totals := make([]categoryTotalResponse, 0, len(rep.Categories))
	for _, ct := range rep.Categories {
		totals = append(totals, categoryTotalResponse{
			Category:        toCategoryResponse(ct.Category),
			Minutes:         ct.Minutes,
			DisplayMinutes:  ct.DisplayMinutes,
			Sessions:        ct.Sessions,
			TargetMinutes:   ct.TargetMinutes,
			PercentOfTarget: ct.PercentOfTarget,
		})
	}
	return weeklyResponse{
		WeekStart:           rep.WeekStart,
		WeekEnd:             rep.WeekEnd,
		Timezone:            rep.Timezone,
		WeekStartsOn:        rep.WeekStartsOn.String(),
		RoundingMinutes:     rep.RoundingMinutes,
		TotalMinutes:        rep.TotalMinutes,
		DisplayTotalMinutes: rep.DisplayTotalMinutes,
		Categories:          totals,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
