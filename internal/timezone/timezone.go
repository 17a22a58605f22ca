// Package timezone applies one civil-time convention everywhere: every
// "today", "is this in the past" and "which weekday" question is answered
// in the tenant's own timezone.
package timezone

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Mexico_City"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseDate accepts "YYYY-MM-DD" or any ISO datetime starting with one.
// The calendar date is taken verbatim, never shifted across timezones.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) < len(DateLayout) {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	if len(s) > len(DateLayout) {
		if s[len(DateLayout)] != 'T' && s[len(DateLayout)] != ' ' {
			return time.Time{}, fmt.Errorf("invalid date %q", s)
		}
	}
	return time.ParseInLocation(DateLayout, s[:len(DateLayout)], loc)
}

// ParseClock validates an "HH:MM" string and returns minutes after midnight.
func ParseClock(hm string) (int, error) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(hm))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// OnDate places an "HH:MM" time of day on the calendar date of d, in d's location.
func OnDate(d time.Time, hm string) (time.Time, error) {
	mins, err := ParseClock(hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), mins/60, mins%60, 0, 0, d.Location()), nil
}

// StartOfDay is midnight of t's calendar date in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BeforeDate reports whether a's calendar date is strictly before b's.
func BeforeDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
