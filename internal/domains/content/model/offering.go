package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/pkg/keycodec"
)

type OfferingType string

const (
	OfferingBusCrawl      OfferingType = "bus_crawl"
	OfferingPubCrawl      OfferingType = "pub_crawl"
	OfferingPrivateEvents OfferingType = "private_events"
	OfferingPatio         OfferingType = "patio"
)

var OfferingTypes = []interface{}{OfferingBusCrawl, OfferingPubCrawl, OfferingPrivateEvents, OfferingPatio}

// DATABASE MAPPING: special_offerings
type SpecialOffering struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	VenueTag     VenueTag     `db:"venue_tag" json:"venue_tag"`
	OfferingType OfferingType `db:"offering_type" json:"offering_type"`
	Title        string       `db:"title" json:"title"`
	Description  string       `db:"description" json:"description"`
	ImageURL     *string      `db:"image_url" json:"image_url"`
	CtaText      *string      `db:"cta_text" json:"cta_text"`
	CtaLink      *string      `db:"cta_link" json:"cta_link"`
	IsActive     bool         `db:"is_active" json:"is_active"`
	DisplayOrder int          `db:"display_order" json:"display_order"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
}

type SpecialOfferingRequest struct {
	VenueTag     VenueTag
	OfferingType OfferingType
	Title        string
	Description  string
	ImageURL     string
	Image        *attachment.File
	CtaText      *string
	CtaLink      *string
	IsActive     bool
	DisplayOrder int
}

func (r *SpecialOfferingRequest) Validate() error {
	r.CtaText = blankToNil(r.CtaText)
	r.CtaLink = blankToNil(r.CtaLink)

	return firstError(
		field("offeringType", r.OfferingType, validation.Required, validation.In(OfferingTypes...)),
		field("title", r.Title, validation.Required, validation.Length(1, 200)),
		field("description", r.Description, validation.Required),
		field("venueTag", r.VenueTag, validation.Required, validation.In(VenueTags...)),
		field("ctaText", r.CtaText, validation.Length(1, 60)),
		field("ctaLink", r.CtaLink, is.URL),
		field("displayOrder", r.DisplayOrder, validation.Min(0)),
	)
}

func (r *SpecialOfferingRequest) ImageInput(previous *string) attachment.Input {
	return attachment.Input{
		Field:    "imageUrl",
		File:     r.Image,
		URL:      r.ImageURL,
		Folder:   attachment.FolderSpecialOfferings,
		Previous: previous,
	}
}

func (r *SpecialOfferingRequest) Row(imageURL *string) keycodec.Object {
	return keycodec.Object{
		{Key: "venueTag", Value: r.VenueTag},
		{Key: "offeringType", Value: r.OfferingType},
		{Key: "title", Value: r.Title},
		{Key: "description", Value: r.Description},
		{Key: "imageUrl", Value: imageURL},
		{Key: "ctaText", Value: r.CtaText},
		{Key: "ctaLink", Value: r.CtaLink},
		{Key: "isActive", Value: r.IsActive},
		{Key: "displayOrder", Value: r.DisplayOrder},
	}
}

type SpecialOfferingFilter struct {
	Venue      VenueTag
	Type       OfferingType
	ActiveOnly bool
}
