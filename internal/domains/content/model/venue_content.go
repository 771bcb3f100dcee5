package model

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"venue-content-backend/pkg/keycodec"
)

var contentKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// VenueContent is a keyed block of copy (hero text, about blurb, ...).
// Writes are upserts on (venue_tag, content_key).
//
// DATABASE MAPPING: venue_content
type VenueContent struct {
	ID         uuid.UUID `db:"id" json:"id"`
	VenueTag   VenueTag  `db:"venue_tag" json:"venue_tag"`
	ContentKey string    `db:"content_key" json:"content_key"`
	Content    string    `db:"content" json:"content"`
	Label      *string   `db:"label" json:"label"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type VenueContentRequest struct {
	VenueTag   VenueTag
	ContentKey string
	Content    string
	Label      *string
}

func (r *VenueContentRequest) Validate() error {
	r.Label = blankToNil(r.Label)

	return firstError(
		field("venueTag", r.VenueTag, validation.Required, validation.In(VenueTags...)),
		field("contentKey", r.ContentKey, validation.Required, validation.Length(1, 100),
			validation.Match(contentKeyPattern).Error("must be lower snake_case")),
		field("content", r.Content, validation.Required),
	)
}

func (r *VenueContentRequest) Row() keycodec.Object {
	return keycodec.Object{
		{Key: "venueTag", Value: r.VenueTag},
		{Key: "contentKey", Value: r.ContentKey},
		{Key: "content", Value: r.Content},
		{Key: "label", Value: r.Label},
	}
}

// ContentMap indexes content blocks by key for page rendering. Rows tagged for the
// concrete venue override "both" rows with the same key.
func ContentMap(items []VenueContent) map[string]string {
	out := make(map[string]string, len(items))
	for _, it := range items {
		if _, seen := out[it.ContentKey]; seen && it.VenueTag == VenueBoth {
			continue
		}
		out[it.ContentKey] = it.Content
	}
	return out
}

type VenueContentFilter struct {
	Venue VenueTag
}
