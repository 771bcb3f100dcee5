package model

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"venue-content-backend/internal/shared/apperror"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

// ClockTime validates "HH:MM" (or "HH:MM:SS") strings.
var ClockTime = validation.Match(clockPattern).Error("must be a time in HH:MM format")

// check is one field of an ordered validation run.
type check struct {
	name  string
	value interface{}
	rules []validation.Rule
}

func field(name string, value interface{}, rules ...validation.Rule) check {
	return check{name: name, value: value, rules: rules}
}

// firstError validates fields in order and stops at the first failure, so a write is
// rejected with exactly one field before anything touches storage.
func firstError(checks ...check) error {
	for _, c := range checks {
		if err := validation.Validate(c.value, c.rules...); err != nil {
			var ve validation.Error
			if errors.As(err, &ve) && ve.Code() == validation.ErrRequired.Code() {
				return apperror.MissingRequiredField(c.name)
			}
			return apperror.InvalidField(c.name, err.Error())
		}
	}
	return nil
}

// normalizeDayPtr validates and canonicalises an optional weekday pointer in place.
func normalizeDayPtr(name string, p **string) error {
	if *p == nil {
		return nil
	}
	if strings.TrimSpace(**p) == "" {
		*p = nil
		return nil
	}
	day, ok := NormalizeDay(**p)
	if !ok {
		return apperror.InvalidField(name, "must be a weekday name")
	}
	*p = &day
	return nil
}

// blankToNil turns "" into nil so optional text columns store NULL.
func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
