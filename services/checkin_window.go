package services

import (
	"time"

	"github.com/tpeo/attendbot/models"
)

// DefaultGrace is how far past the scheduled start a check-in is still
// admitted. Arbitrarily early arrivals are always admitted; the grace
// window only bounds lateness.
const DefaultGrace = 10 * time.Minute

// Timestamp formats persisted to the store.
const (
	DateLayout      = "01/02/2006"
	TimestampLayout = "01/02/2006 15:04:05"
)

// CheckInWindow decides whether a recurring event admits check-in at a
// given moment. It is a pure decision function: rejection is a value,
// never an error.
type CheckInWindow struct {
	Grace time.Duration
}

// Admits reports whether now falls inside the event's admission window:
// today must be the event's recurring weekday and the current time of
// day must be no more than Grace past the scheduled start.
//
// The delta is computed by pinning both times of day to one placeholder
// date and subtracting, so only time of day matters. A start near
// midnight against a check-in on the other side of it is NOT corrected
// for day wraparound; that boundary behavior is inherited and kept
// as-is pending a product decision.
func (w CheckInWindow) Admits(event *models.EventDefinition, now time.Time) bool {
	if now.Weekday().String() != event.Weekday {
		return false
	}
	start, err := event.StartTime()
	if err != nil {
		return false
	}
	delta := atPlaceholderDate(start).Sub(atPlaceholderDate(now))
	return delta >= -w.Grace
}

// IdempotencyKey derives the at-most-once key for an attendance record:
// handle + event abbreviation + store-local calendar date.
func IdempotencyKey(handle, abbrev string, now time.Time) string {
	return handle + abbrev + now.Format(DateLayout)
}

func atPlaceholderDate(t time.Time) time.Time {
	return time.Date(1, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
