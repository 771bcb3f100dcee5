package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"venue-content-backend/internal/shared/apperror"
	"venue-content-backend/pkg/keycodec"
)

// OperatingHour is one weekday of a venue's schedule, unique per (venue_tag, day_of_week).
//
// DATABASE MAPPING: operating_hours
type OperatingHour struct {
	ID           uuid.UUID `db:"id" json:"id"`
	VenueTag     VenueTag  `db:"venue_tag" json:"venue_tag"`
	DayOfWeek    string    `db:"day_of_week" json:"day_of_week"`
	OpenTime     *string   `db:"open_time" json:"open_time"`
	CloseTime    *string   `db:"close_time" json:"close_time"`
	IsClosed     bool      `db:"is_closed" json:"is_closed"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type OperatingHourRequest struct {
	VenueTag     VenueTag
	DayOfWeek    string
	OpenTime     *string
	CloseTime    *string
	IsClosed     bool
	DisplayOrder *int
}

func (r *OperatingHourRequest) Validate() error {
	r.OpenTime = blankToNil(r.OpenTime)
	r.CloseTime = blankToNil(r.CloseTime)

	if err := firstError(
		field("venueTag", r.VenueTag, validation.Required, validation.In(VenueTags...)),
		field("dayOfWeek", r.DayOfWeek, validation.Required),
		field("openTime", r.OpenTime, ClockTime),
		field("closeTime", r.CloseTime, ClockTime),
	); err != nil {
		return err
	}

	day, ok := NormalizeDay(r.DayOfWeek)
	if !ok {
		return apperror.InvalidField("dayOfWeek", "must be a weekday name")
	}
	r.DayOfWeek = day

	if r.IsClosed {
		r.OpenTime, r.CloseTime = nil, nil
		return nil
	}
	if r.OpenTime == nil {
		return apperror.MissingRequiredField("openTime")
	}
	if r.CloseTime == nil {
		return apperror.MissingRequiredField("closeTime")
	}
	return nil
}

// Row defaults displayOrder to the weekday position so Monday lists first.
func (r *OperatingHourRequest) Row() keycodec.Object {
	order := DayIndex(r.DayOfWeek)
	if r.DisplayOrder != nil {
		order = *r.DisplayOrder
	}
	return keycodec.Object{
		{Key: "venueTag", Value: r.VenueTag},
		{Key: "dayOfWeek", Value: r.DayOfWeek},
		{Key: "openTime", Value: r.OpenTime},
		{Key: "closeTime", Value: r.CloseTime},
		{Key: "isClosed", Value: r.IsClosed},
		{Key: "displayOrder", Value: order},
	}
}

type OperatingHourFilter struct {
	Venue VenueTag
}
