package insights

import (
	"time"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

// CategoryTotal is one category's share of the week.
// DisplayMinutes is Minutes rounded to the user's granularity.
type CategoryTotal struct {
	Category        *domain.Category
	Minutes         int
	DisplayMinutes  int
	Sessions        int
	TargetMinutes   *int
	PercentOfTarget *float64
}

// WeeklyReport holds per-category totals for one week. WeekStart and WeekEnd
// are UTC instants bounding the local week [WeekStart, WeekEnd).
type WeeklyReport struct {
	WeekStart           time.Time
	WeekEnd             time.Time
	Timezone            string
	WeekStartsOn        domain.WeekStart
	RoundingMinutes     int
	Categories          []CategoryTotal
	TotalMinutes        int
	DisplayTotalMinutes int
}
