package models

import (
	"time"

	"github.com/tpeo/attendbot/errors"
)

// Start-time cell formats accepted from the Events sheet. The sheet is
// edited by hand, so both "6:00 PM" and "18:00" show up in practice.
var startLayouts = []string{"3:04 PM", "15:04"}

// EventDefinition is one row of the Events sheet: column A display name,
// column B abbreviation (the lookup key), column C recurring weekday,
// column D start time of day. Managed out-of-band; read-only here.
type EventDefinition struct {
	Name    string
	Abbrev  string
	Weekday string
	Start   string
}

// EventFromRow decodes an Events sheet row. Returns nil for rows missing
// any of the four columns.
func EventFromRow(row []string) *EventDefinition {
	if len(row) < 4 {
		return nil
	}
	return &EventDefinition{
		Name:    row[0],
		Abbrev:  row[1],
		Weekday: row[2],
		Start:   row[3],
	}
}

// StartTime parses the start-of-day cell. Only the time-of-day fields of
// the result are meaningful; the date is the zero date.
func (e *EventDefinition) StartTime() (time.Time, error) {
	var lastErr error
	for _, layout := range startLayouts {
		t, err := time.Parse(layout, e.Start)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, errors.NewAppError(errors.ErrCodeBadTimeFormat,
		"unparseable event start time "+e.Start, lastErr)
}
