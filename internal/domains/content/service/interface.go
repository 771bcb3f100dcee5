package service

import (
	"context"

	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/internal/domains/content/model"
)

// ImageResolver is satisfied by *attachment.Resolver.
type ImageResolver interface {
	Resolve(ctx context.Context, in attachment.Input) (*string, error)
}

// Reader is the read/delete half every entity service shares.
type Reader[T any, F any] interface {
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context, filter F) ([]T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PerformerService interface {
	Reader[model.Performer, model.PerformerFilter]
	Create(ctx context.Context, req *model.PerformerRequest) (*model.Performer, error)
	Update(ctx context.Context, id uuid.UUID, req *model.PerformerRequest) (*model.Performer, error)
}

type EventService interface {
	Reader[model.Event, model.EventFilter]
	Create(ctx context.Context, req *model.EventRequest) (*model.Event, error)
	Update(ctx context.Context, id uuid.UUID, req *model.EventRequest) (*model.Event, error)
}

type DealService interface {
	Reader[model.Deal, model.DealFilter]
	Create(ctx context.Context, req *model.DealRequest) (*model.Deal, error)
	Update(ctx context.Context, id uuid.UUID, req *model.DealRequest) (*model.Deal, error)
}

type GalleryImageService interface {
	Reader[model.GalleryImage, model.GalleryFilter]
	Create(ctx context.Context, req *model.GalleryImageRequest) (*model.GalleryImage, error)
	Update(ctx context.Context, id uuid.UUID, req *model.GalleryImageRequest) (*model.GalleryImage, error)
}

type VideoService interface {
	Reader[model.Video, model.VideoFilter]
	Create(ctx context.Context, req *model.VideoRequest) (*model.Video, error)
	Update(ctx context.Context, id uuid.UUID, req *model.VideoRequest) (*model.Video, error)
}

type PostService interface {
	Reader[model.Post, model.PostFilter]
	Create(ctx context.Context, req *model.PostRequest) (*model.Post, error)
	Update(ctx context.Context, id uuid.UUID, req *model.PostRequest) (*model.Post, error)
}

type OperatingHourService interface {
	Reader[model.OperatingHour, model.OperatingHourFilter]
	Create(ctx context.Context, req *model.OperatingHourRequest) (*model.OperatingHour, error)
	Update(ctx context.Context, id uuid.UUID, req *model.OperatingHourRequest) (*model.OperatingHour, error)
	ReplaceWeek(ctx context.Context, reqs []*model.OperatingHourRequest) ([]model.OperatingHour, error)
}

type SpecialOfferingService interface {
	Reader[model.SpecialOffering, model.SpecialOfferingFilter]
	Create(ctx context.Context, req *model.SpecialOfferingRequest) (*model.SpecialOffering, error)
	Update(ctx context.Context, id uuid.UUID, req *model.SpecialOfferingRequest) (*model.SpecialOffering, error)
}

type VenueContentService interface {
	Reader[model.VenueContent, model.VenueContentFilter]
	Upsert(ctx context.Context, req *model.VenueContentRequest) (*model.VenueContent, error)
}
