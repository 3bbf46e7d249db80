// Package tariff classifies wall-clock time into standard and reduced rate
// periods and splits call intervals across them.
package tariff

import (
	"fmt"
	"time"

	"github.com/hexatel/callrater/internal/config"
)

// Policy classifies an instant as reduced-rate or standard-rate. Policies
// are evaluated at hour granularity: the classification of an instant is
// constant until the next clock-hour boundary.
type Policy interface {
	Reduced(t time.Time) bool
	Name() string
}

// WeekendEvening is the production policy: weekends are reduced all day,
// weekdays are reduced from 19:00 up to (not including) 07:00.
type WeekendEvening struct{}

func (WeekendEvening) Name() string { return config.PolicyWeekendEvening }

func (WeekendEvening) Reduced(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	h := t.Hour()
	return h >= 19 || h < 7
}

// NightWindow is the legacy policy: 00:00 up to 08:00 is reduced every day,
// with no weekend rule.
type NightWindow struct{}

func (NightWindow) Name() string { return config.PolicyNightWindow }

func (NightWindow) Reduced(t time.Time) bool {
	return t.Hour() < 8
}

// PolicyByName returns the policy for a configured name.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case config.PolicyWeekendEvening:
		return WeekendEvening{}, nil
	case config.PolicyNightWindow:
		return NightWindow{}, nil
	default:
		return nil, fmt.Errorf("unknown rate period policy %q", name)
	}
}
