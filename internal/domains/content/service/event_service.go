package service

import (
	"context"

	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/content/repository"
	"venue-content-backend/internal/domains/content/rules"
)

type eventService struct {
	reader[model.Event, model.EventFilter]
	repo   repository.EventRepository
	images ImageResolver
}

func NewEventService(repo repository.EventRepository, images ImageResolver) EventService {
	return &eventService{
		reader: reader[model.Event, model.EventFilter]{entity: "event", repo: repo},
		repo:   repo,
		images: images,
	}
}

func (s *eventService) check(req *model.EventRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := rules.CheckEventSchedule(req.EventDate, req.RecurringDay); err != nil {
		return err
	}
	return attachment.Validate(req.ImageInput(nil))
}

func (s *eventService) Create(ctx context.Context, req *model.EventRequest) (*model.Event, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	poster, err := s.images.Resolve(ctx, req.ImageInput(nil))
	if err != nil {
		return nil, err
	}

	e, err := s.repo.Create(ctx, req.Row(poster))
	if err != nil {
		return nil, err
	}
	logWrite("event", "create", e.ID, string(e.VenueTag))
	return e, nil
}

func (s *eventService) Update(ctx context.Context, id uuid.UUID, req *model.EventRequest) (*model.Event, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	poster, err := s.images.Resolve(ctx, req.ImageInput(current.PosterImageURL))
	if err != nil {
		return nil, err
	}

	e, err := s.repo.Update(ctx, id, req.Row(poster))
	if err != nil {
		return nil, err
	}
	logWrite("event", "update", e.ID, string(e.VenueTag))
	return e, nil
}
