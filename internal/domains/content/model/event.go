package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/internal/shared/apperror"
	"venue-content-backend/pkg/keycodec"
)

type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
	EventCancelled EventStatus = "cancelled"
)

var EventStatuses = []interface{}{EventDraft, EventPublished, EventCancelled}

// Event is either a one-off night (EventDate set) or a weekly slot (RecurringDay set).
// When both are set the date wins: the row is shown and filtered as a one-off.
//
// DATABASE MAPPING: events (performer_id ON DELETE SET NULL)
type Event struct {
	ID             uuid.UUID        `db:"id" json:"id"`
	VenueTag       VenueTag         `db:"venue_tag" json:"venue_tag"`
	Title          string           `db:"title" json:"title"`
	Description    *string          `db:"description" json:"description"`
	EventDate      *time.Time       `db:"event_date" json:"event_date"`
	StartTime      *string          `db:"start_time" json:"start_time"`
	EndTime        *string          `db:"end_time" json:"end_time"`
	PerformerID    *uuid.UUID       `db:"performer_id" json:"performer_id"`
	EventType      *string          `db:"event_type" json:"event_type"`
	CoverCharge    *decimal.Decimal `db:"cover_charge" json:"cover_charge"`
	PosterImageURL *string          `db:"poster_image_url" json:"poster_image_url"`
	Status         EventStatus      `db:"status" json:"status"`
	RecurringDay   *string          `db:"recurring_day" json:"recurring_day"`
	CreatedAt      time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at" json:"updated_at"`
}

// IsOneOff reports whether the event is shown as a dated night.
func (e *Event) IsOneOff() bool { return e.EventDate != nil }

// IsRecurring reports whether the event is a weekly slot with no concrete date.
func (e *Event) IsRecurring() bool { return e.EventDate == nil && e.RecurringDay != nil }

// ScheduleLabel is the human readable "when" of an event.
func (e *Event) ScheduleLabel() string {
	switch {
	case e.IsOneOff():
		return e.EventDate.Format("Mon Jan 2, 2006")
	case e.IsRecurring():
		return "Every " + *e.RecurringDay
	default:
		return ""
	}
}

type EventRequest struct {
	VenueTag       VenueTag
	Title          string
	Description    *string
	EventDate      *time.Time
	StartTime      *string
	EndTime        *string
	PerformerID    *uuid.UUID
	EventType      *string
	CoverCharge    *decimal.Decimal
	PosterImageURL string
	PosterImage    *attachment.File
	Status         EventStatus
	RecurringDay   *string
}

func (r *EventRequest) Validate() error {
	r.Description = blankToNil(r.Description)
	r.StartTime = blankToNil(r.StartTime)
	r.EndTime = blankToNil(r.EndTime)
	r.EventType = blankToNil(r.EventType)
	if r.Status == "" {
		r.Status = EventPublished
	}
	if r.EventDate != nil && r.EventDate.IsZero() {
		r.EventDate = nil
	}

	if err := firstError(
		field("title", r.Title, validation.Required, validation.Length(1, 200)),
		field("venueTag", r.VenueTag, validation.Required, validation.In(VenueTags...)),
		field("status", r.Status, validation.In(EventStatuses...)),
		field("startTime", r.StartTime, ClockTime),
		field("endTime", r.EndTime, ClockTime),
	); err != nil {
		return err
	}
	if err := normalizeDayPtr("recurringDay", &r.RecurringDay); err != nil {
		return err
	}
	if r.CoverCharge != nil && r.CoverCharge.IsNegative() {
		return apperror.InvalidField("coverCharge", "must not be negative")
	}
	return nil
}

func (r *EventRequest) ImageInput(previous *string) attachment.Input {
	return attachment.Input{
		Field:    "posterImageUrl",
		File:     r.PosterImage,
		URL:      r.PosterImageURL,
		Folder:   attachment.FolderEvents,
		Previous: previous,
	}
}

func (r *EventRequest) Row(posterImageURL *string) keycodec.Object {
	var eventDate *time.Time
	if r.EventDate != nil {
		d := time.Date(r.EventDate.Year(), r.EventDate.Month(), r.EventDate.Day(), 0, 0, 0, 0, time.UTC)
		eventDate = &d
	}
	return keycodec.Object{
		{Key: "venueTag", Value: r.VenueTag},
		{Key: "title", Value: r.Title},
		{Key: "description", Value: r.Description},
		{Key: "eventDate", Value: eventDate},
		{Key: "startTime", Value: r.StartTime},
		{Key: "endTime", Value: r.EndTime},
		{Key: "performerId", Value: r.PerformerID},
		{Key: "eventType", Value: r.EventType},
		{Key: "coverCharge", Value: r.CoverCharge},
		{Key: "posterImageUrl", Value: posterImageURL},
		{Key: "status", Value: r.Status},
		{Key: "recurringDay", Value: r.RecurringDay},
	}
}

type EventFilter struct {
	Venue        VenueTag
	Status       EventStatus
	UpcomingFrom *time.Time // dated events on/after this day, plus every recurring event
	PerformerID  *uuid.UUID
	Limit        int
}
