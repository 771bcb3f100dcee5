package repository

import (
	"context"

	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/pkg/keycodec"
)

// =====================================================
// GENERIC ENTITY REPOSITORY
// =====================================================
// Rows arrive in external (camelCase) form and are decoded to column names here, so
// callers never deal with table naming.
type Repository[T any, F any] interface {
	Create(ctx context.Context, row keycodec.Object) (*T, error)
	Update(ctx context.Context, id uuid.UUID, row keycodec.Object) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context, filter F) ([]T, error)
	Count(ctx context.Context) (int64, error)
}

type PerformerRepository interface {
	Repository[model.Performer, model.PerformerFilter]
	// FindByIDs skips ids that no longer exist.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Performer, error)
}

type EventRepository interface {
	Repository[model.Event, model.EventFilter]
}

type DealRepository interface {
	Repository[model.Deal, model.DealFilter]
}

type GalleryImageRepository interface {
	Repository[model.GalleryImage, model.GalleryFilter]
}

type VideoRepository interface {
	Repository[model.Video, model.VideoFilter]
}

type PostRepository interface {
	Repository[model.Post, model.PostFilter]
}

type OperatingHourRepository interface {
	Repository[model.OperatingHour, model.OperatingHourFilter]
	// ReplaceWeek upserts every row on (venue_tag, day_of_week) in one transaction.
	ReplaceWeek(ctx context.Context, rows []keycodec.Object) ([]model.OperatingHour, error)
}

type SpecialOfferingRepository interface {
	Repository[model.SpecialOffering, model.SpecialOfferingFilter]
}

type VenueContentRepository interface {
	// Upsert is keyed on (venue_tag, content_key).
	Upsert(ctx context.Context, row keycodec.Object) (*model.VenueContent, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.VenueContent, error)
	List(ctx context.Context, filter model.VenueContentFilter) ([]model.VenueContent, error)
	Count(ctx context.Context) (int64, error)
}
