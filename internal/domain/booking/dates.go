package booking

import "time"

// Date handling: booking dates are civil dates represented as midnight
// in the booking location. All comparisons here are pure and total.

// Midnight truncates an instant to the start of its calendar day,
// keeping the location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MidnightIn re-expresses a civil date as midnight in loc, keeping the
// calendar day. Wire dates arrive as midnight UTC; converting that
// instant with In() would shift the day for zones west of UTC, so the
// year/month/day components are rebound instead.
func MidnightIn(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SameDate reports whether two instants fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsPastDate reports whether date is strictly before today.
func IsPastDate(date, today time.Time) bool {
	return Midnight(date).Before(Midnight(today))
}

// ExceedsHorizon reports whether date is beyond today+horizonDays. The
// boundary day itself is bookable.
func ExceedsHorizon(date, today time.Time, horizonDays int) bool {
	limit := Midnight(today).AddDate(0, 0, horizonDays)
	return Midnight(date).After(limit)
}

// WeekWindow returns the Monday and Sunday bounding the ISO week that
// contains date. The weekly machine quota is counted over this window.
func WeekWindow(date time.Time) (monday, sunday time.Time) {
	d := Midnight(date)
	weekday := int(d.Weekday())
	if weekday == 0 { // time.Sunday
		weekday = 7
	}
	monday = d.AddDate(0, 0, -(weekday - 1))
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}
