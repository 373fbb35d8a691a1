package services

import (
	"time"
	_ "time/tzdata"

	"github.com/tpeo/attendbot/errors"
)

const DefaultTimezone = "America/Chicago"

// Clock supplies the wall-clock time check-in decisions are made
// against. Tests substitute a fixed clock.
type Clock interface {
	Now() time.Time
}

type localClock struct {
	loc *time.Location
}

// NewClock creates a Clock pinned to the named timezone.
func NewClock(timezone string) (Clock, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeMalformedInput,
			"invalid timezone "+timezone, err)
	}
	return &localClock{loc: loc}, nil
}

func (c *localClock) Now() time.Time {
	return time.Now().In(c.loc)
}
