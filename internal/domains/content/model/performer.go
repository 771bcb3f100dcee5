package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/pkg/keycodec"
)

type PerformerType string

const (
	PerformerDJ         PerformerType = "dj"
	PerformerBand       PerformerType = "band"
	PerformerSoloArtist PerformerType = "solo_artist"
)

var PerformerTypes = []interface{}{PerformerDJ, PerformerBand, PerformerSoloArtist}

// Performer is a DJ, band or solo act listed on a venue's lineup.
//
// DATABASE MAPPING: performers
type Performer struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	Name            string        `db:"name" json:"name"`
	PerformerType   PerformerType `db:"performer_type" json:"performer_type"`
	Bio             string        `db:"bio" json:"bio"`
	Genre           *string       `db:"genre" json:"genre"`
	ProfileImageURL string        `db:"profile_image_url" json:"profile_image_url"`
	InstagramURL    *string       `db:"instagram_url" json:"instagram_url"`
	FacebookURL     *string       `db:"facebook_url" json:"facebook_url"`
	SpotifyURL      *string       `db:"spotify_url" json:"spotify_url"`
	SoundcloudURL   *string       `db:"soundcloud_url" json:"soundcloud_url"`
	WebsiteURL      *string       `db:"website_url" json:"website_url"`
	VenueTag        VenueTag      `db:"venue_tag" json:"venue_tag"`
	IsFeatured      bool          `db:"is_featured" json:"is_featured"`
	IsAlumni        bool          `db:"is_alumni" json:"is_alumni"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`
}

// PerformerRequest is the write payload for create and update.
type PerformerRequest struct {
	Name            string
	PerformerType   PerformerType
	Bio             string
	Genre           *string
	ProfileImageURL string
	ProfileImage    *attachment.File
	InstagramURL    *string
	FacebookURL     *string
	SpotifyURL      *string
	SoundcloudURL   *string
	WebsiteURL      *string
	VenueTag        VenueTag
	IsFeatured      bool
	IsAlumni        bool
}

func (r *PerformerRequest) Validate() error {
	r.Genre = blankToNil(r.Genre)
	r.InstagramURL = blankToNil(r.InstagramURL)
	r.FacebookURL = blankToNil(r.FacebookURL)
	r.SpotifyURL = blankToNil(r.SpotifyURL)
	r.SoundcloudURL = blankToNil(r.SoundcloudURL)
	r.WebsiteURL = blankToNil(r.WebsiteURL)

	return firstError(
		field("name", r.Name, validation.Required, validation.Length(1, 200)),
		field("performerType", r.PerformerType, validation.Required, validation.In(PerformerTypes...)),
		field("bio", r.Bio, validation.Required),
		field("venueTag", r.VenueTag, validation.Required, validation.In(VenueTags...)),
		field("instagramUrl", r.InstagramURL, is.URL),
		field("facebookUrl", r.FacebookURL, is.URL),
		field("spotifyUrl", r.SpotifyURL, is.URL),
		field("soundcloudUrl", r.SoundcloudURL, is.URL),
		field("websiteUrl", r.WebsiteURL, is.URL),
	)
}

// ImageInput describes the profile image field; previous is nil on create.
func (r *PerformerRequest) ImageInput(previous *string) attachment.Input {
	return attachment.Input{
		Field:    "profileImageUrl",
		File:     r.ProfileImage,
		URL:      r.ProfileImageURL,
		Folder:   attachment.FolderPerformers,
		Required: true,
		Previous: previous,
	}
}

// Row is the external (camelCase) representation of the write.
func (r *PerformerRequest) Row(profileImageURL string) keycodec.Object {
	return keycodec.Object{
		{Key: "name", Value: r.Name},
		{Key: "performerType", Value: r.PerformerType},
		{Key: "bio", Value: r.Bio},
		{Key: "genre", Value: r.Genre},
		{Key: "profileImageUrl", Value: profileImageURL},
		{Key: "instagramUrl", Value: r.InstagramURL},
		{Key: "facebookUrl", Value: r.FacebookURL},
		{Key: "spotifyUrl", Value: r.SpotifyURL},
		{Key: "soundcloudUrl", Value: r.SoundcloudURL},
		{Key: "websiteUrl", Value: r.WebsiteURL},
		{Key: "venueTag", Value: r.VenueTag},
		{Key: "isFeatured", Value: r.IsFeatured},
		{Key: "isAlumni", Value: r.IsAlumni},
	}
}

type PerformerFilter struct {
	Venue        VenueTag // empty = every venue (admin)
	Type         PerformerType
	FeaturedOnly bool
	Alumni       *bool
	Limit        int
}
