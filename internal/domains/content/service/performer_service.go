package service

import (
	"context"

	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/content/repository"
	"venue-content-backend/internal/domains/content/rules"
)

type performerService struct {
	reader[model.Performer, model.PerformerFilter]
	repo   repository.PerformerRepository
	images ImageResolver
}

func NewPerformerService(repo repository.PerformerRepository, images ImageResolver) PerformerService {
	return &performerService{
		reader: reader[model.Performer, model.PerformerFilter]{entity: "performer", repo: repo},
		repo:   repo,
		images: images,
	}
}

// check runs every I/O-free validation in order: fields, venue rule, upload type.
func (s *performerService) check(req *model.PerformerRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := rules.CheckPerformerVenue(req.VenueTag, req.PerformerType); err != nil {
		return err
	}
	return attachment.Validate(req.ImageInput(nil))
}

func (s *performerService) Create(ctx context.Context, req *model.PerformerRequest) (*model.Performer, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	imageURL, err := s.images.Resolve(ctx, req.ImageInput(nil))
	if err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, req.Row(*imageURL))
	if err != nil {
		return nil, err
	}
	logWrite("performer", "create", p.ID, string(p.VenueTag))
	return p, nil
}

func (s *performerService) Update(ctx context.Context, id uuid.UUID, req *model.PerformerRequest) (*model.Performer, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.images.Resolve(ctx, req.ImageInput(&current.ProfileImageURL))
	if err != nil {
		return nil, err
	}

	p, err := s.repo.Update(ctx, id, req.Row(*imageURL))
	if err != nil {
		return nil, err
	}
	logWrite("performer", "update", p.ID, string(p.VenueTag))
	return p, nil
}
