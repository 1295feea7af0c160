package machine

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidTimeWindow = errors.New("invalid time window format, want HH:MM-HH:MM")
)

// TimeWindow is a recurring time-of-day range on a slot. It carries no
// date; combine it with a calendar date to get absolute instants. An end
// of 00:00 means the window runs to the following midnight.
type TimeWindow struct {
	startMin int // minutes since midnight
	endMin   int
}

// ParseTimeWindow parses the catalog's "HH:MM-HH:MM" window string. The
// catalog historically separated with an en-dash, so both are accepted.
func ParseTimeWindow(s string) (TimeWindow, error) {
	normalized := strings.ReplaceAll(s, "–", "-")
	parts := strings.Split(normalized, "-")
	if len(parts) != 2 {
		return TimeWindow{}, ErrInvalidTimeWindow
	}

	start, err := parseMinutes(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeWindow{}, err
	}
	end, err := parseMinutes(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeWindow{}, err
	}

	return TimeWindow{startMin: start, endMin: end}, nil
}

func MustParseTimeWindow(s string) TimeWindow {
	w, err := ParseTimeWindow(s)
	if err != nil {
		panic(err)
	}
	return w
}

func parseMinutes(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, ErrInvalidTimeWindow
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, ErrInvalidTimeWindow
	}
	return h*60 + m, nil
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d",
		w.startMin/60, w.startMin%60, w.endMin/60, w.endMin%60)
}

// StartAt returns the absolute start instant of the window on the given
// date, in the date's location.
func (w TimeWindow) StartAt(date time.Time) time.Time {
	return atMinutes(date, w.startMin)
}

// EndAt returns the absolute end instant. A window ending at or before
// its start wraps past midnight and resolves into the next calendar date.
func (w TimeWindow) EndAt(date time.Time) time.Time {
	if w.endMin <= w.startMin {
		return atMinutes(date.AddDate(0, 0, 1), w.endMin)
	}
	return atMinutes(date, w.endMin)
}

// HasStarted reports whether the window's start on the given date is at
// or before now. Used to gate same-day cancellation.
func (w TimeWindow) HasStarted(date time.Time, now time.Time) bool {
	return !now.Before(w.StartAt(date))
}

func atMinutes(date time.Time, minutes int) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, date.Location())
}
