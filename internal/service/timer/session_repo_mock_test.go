package timer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	GetByIDFunc       func(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*domain.Session, error)
	GetActiveFunc     func(ctx context.Context, userID uuid.UUID) (*domain.Session, error)
	ListFunc          func(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) ([]*domain.Session, int, error)
	CreateFunc        func(ctx context.Context, s *domain.Session) (*domain.Session, error)
	StopFunc          func(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, end time.Time, durationMin int, quality *float64, tags []string) (*domain.Session, error)
	UpdateTimesFunc   func(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, times domain.SessionTimes, now time.Time) (*domain.Session, error)
	UpdateDetailsFunc func(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, params domain.SessionDetailsParams, now time.Time) (*domain.Session, error)
	DeleteFunc        func(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			SessionID uuid.UUID
		}
		GetActive []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.SessionFilter
		}
		Create []struct {
			Ctx context.Context
			S   *domain.Session
		}
		Stop []struct {
			Ctx         context.Context
			UserID      uuid.UUID
			SessionID   uuid.UUID
			End         time.Time
			DurationMin int
			Quality     *float64
			Tags        []string
		}
		UpdateTimes []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			SessionID uuid.UUID
			Times     domain.SessionTimes
			Now       time.Time
		}
		UpdateDetails []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			SessionID uuid.UUID
			Params    domain.SessionDetailsParams
			Now       time.Time
		}
		Delete []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			SessionID uuid.UUID
		}
	}
	lockGetByID       sync.RWMutex
	lockGetActive     sync.RWMutex
	lockList          sync.RWMutex
	lockCreate        sync.RWMutex
	lockStop          sync.RWMutex
	lockUpdateTimes   sync.RWMutex
	lockUpdateDetails sync.RWMutex
	lockDelete        sync.RWMutex
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*domain.Session, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		SessionID uuid.UUID
	}{
		Ctx:       ctx,
		UserID:    userID,
		SessionID: sessionID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, sessionID)
}

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	SessionID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetActive(ctx context.Context, userID uuid.UUID) (*domain.Session, error) {
	if mock.GetActiveFunc == nil {
		panic("sessionRepoMock.GetActiveFunc: method is nil but sessionRepo.GetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetActive.Lock()
	mock.calls.GetActive = append(mock.calls.GetActive, callInfo)
	mock.lockGetActive.Unlock()
	return mock.GetActiveFunc(ctx, userID)
}

func (mock *sessionRepoMock) GetActiveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetActive.RLock()
	calls := mock.calls.GetActive
	mock.lockGetActive.RUnlock()
	return calls
}

func (mock *sessionRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) ([]*domain.Session, int, error) {
	if mock.ListFunc == nil {
		panic("sessionRepoMock.ListFunc: method is nil but sessionRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.SessionFilter
	}{
		Ctx:    ctx,
		UserID: userID,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *sessionRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.SessionFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Session
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Session
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Stop(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, end time.Time, durationMin int, quality *float64, tags []string) (*domain.Session, error) {
	if mock.StopFunc == nil {
		panic("sessionRepoMock.StopFunc: method is nil but sessionRepo.Stop was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		UserID      uuid.UUID
		SessionID   uuid.UUID
		End         time.Time
		DurationMin int
		Quality     *float64
		Tags        []string
	}{
		Ctx:         ctx,
		UserID:      userID,
		SessionID:   sessionID,
		End:         end,
		DurationMin: durationMin,
		Quality:     quality,
		Tags:        tags,
	}
	mock.lockStop.Lock()
	mock.calls.Stop = append(mock.calls.Stop, callInfo)
	mock.lockStop.Unlock()
	return mock.StopFunc(ctx, userID, sessionID, end, durationMin, quality, tags)
}

func (mock *sessionRepoMock) StopCalls() []struct {
	Ctx         context.Context
	UserID      uuid.UUID
	SessionID   uuid.UUID
	End         time.Time
	DurationMin int
	Quality     *float64
	Tags        []string
} {
	mock.lockStop.RLock()
	calls := mock.calls.Stop
	mock.lockStop.RUnlock()
	return calls
}

func (mock *sessionRepoMock) UpdateTimes(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, times domain.SessionTimes, now time.Time) (*domain.Session, error) {
	if mock.UpdateTimesFunc == nil {
		panic("sessionRepoMock.UpdateTimesFunc: method is nil but sessionRepo.UpdateTimes was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		SessionID uuid.UUID
		Times     domain.SessionTimes
		Now       time.Time
	}{
		Ctx:       ctx,
		UserID:    userID,
		SessionID: sessionID,
		Times:     times,
		Now:       now,
	}
	mock.lockUpdateTimes.Lock()
	mock.calls.UpdateTimes = append(mock.calls.UpdateTimes, callInfo)
	mock.lockUpdateTimes.Unlock()
	return mock.UpdateTimesFunc(ctx, userID, sessionID, times, now)
}

func (mock *sessionRepoMock) UpdateTimesCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	SessionID uuid.UUID
	Times     domain.SessionTimes
	Now       time.Time
} {
	mock.lockUpdateTimes.RLock()
	calls := mock.calls.UpdateTimes
	mock.lockUpdateTimes.RUnlock()
	return calls
}

func (mock *sessionRepoMock) UpdateDetails(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, params domain.SessionDetailsParams, now time.Time) (*domain.Session, error) {
	if mock.UpdateDetailsFunc == nil {
		panic("sessionRepoMock.UpdateDetailsFunc: method is nil but sessionRepo.UpdateDetails was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		SessionID uuid.UUID
		Params    domain.SessionDetailsParams
		Now       time.Time
	}{
		Ctx:       ctx,
		UserID:    userID,
		SessionID: sessionID,
		Params:    params,
		Now:       now,
	}
	mock.lockUpdateDetails.Lock()
	mock.calls.UpdateDetails = append(mock.calls.UpdateDetails, callInfo)
	mock.lockUpdateDetails.Unlock()
	return mock.UpdateDetailsFunc(ctx, userID, sessionID, params, now)
}

func (mock *sessionRepoMock) UpdateDetailsCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	SessionID uuid.UUID
	Params    domain.SessionDetailsParams
	Now       time.Time
} {
	mock.lockUpdateDetails.RLock()
	calls := mock.calls.UpdateDetails
	mock.lockUpdateDetails.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Delete(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("sessionRepoMock.DeleteFunc: method is nil but sessionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		SessionID uuid.UUID
	}{
		Ctx:       ctx,
		UserID:    userID,
		SessionID: sessionID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, sessionID)
}

func (mock *sessionRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	SessionID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
