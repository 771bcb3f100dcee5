package model

import (
	"strings"

	"venue-content-backend/internal/shared/apperror"
)

// VenueTag scopes a row to one venue or to both.
type VenueTag string

const (
	VenueRobRoy    VenueTag = "rob_roy"
	VenueKonfusion VenueTag = "konfusion"
	VenueBoth      VenueTag = "both"
)

// VenueTags lists every accepted tag value (for validation.In).
var VenueTags = []interface{}{VenueRobRoy, VenueKonfusion, VenueBoth}

func (v VenueTag) Valid() bool {
	switch v {
	case VenueRobRoy, VenueKonfusion, VenueBoth:
		return true
	}
	return false
}

// ParseVenueScope parses the venue a read request is scoped to. Only concrete venues are
// accepted; "both" is a row tag, not a scope.
func ParseVenueScope(s string) (VenueTag, error) {
	v := VenueTag(strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "-", "_"))))
	if v != VenueRobRoy && v != VenueKonfusion {
		return "", apperror.InvalidField("venue", "must be rob_roy or konfusion")
	}
	return v, nil
}

// Days are the canonical weekday names stored in day_of_week / recurring_day.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// NormalizeDay returns the canonical spelling of a weekday name ("tuesday" -> "Tuesday").
func NormalizeDay(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, d := range Days {
		if strings.EqualFold(d, s) {
			return d, true
		}
	}
	return "", false
}

// DayIndex orders weekdays Monday=0 … Sunday=6; unknown names sort last.
func DayIndex(day string) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return len(Days)
}
