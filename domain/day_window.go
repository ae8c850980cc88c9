package domain

import (
	"time"
)

// DayWindow is the half-open [Start, End) 24-hour interval that defines the
// current accounting day. It is never persisted and must be recomputed from
// wall-clock time on every query.
type DayWindow struct {
	Start time.Time
	End   time.Time
}

// CurrentWindow returns the accounting day containing now, rolling over at
// boundaryHour instead of midnight. A meal logged at 01:00 still counts
// toward the previous evening when the boundary is 05:00. An instant exactly
// on the boundary starts the new window.
func CurrentWindow(now time.Time, boundaryHour int) DayWindow {
	boundary := time.Date(now.Year(), now.Month(), now.Day(), boundaryHour, 0, 0, 0, now.Location())

	if now.Hour() < boundaryHour {
		return DayWindow{Start: boundary.AddDate(0, 0, -1), End: boundary}
	}
	return DayWindow{Start: boundary, End: boundary.AddDate(0, 0, 1)}
}

func (w DayWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
