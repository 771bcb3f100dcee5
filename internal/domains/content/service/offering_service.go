package service

import (
	"context"

	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/content/repository"
)

type specialOfferingService struct {
	reader[model.SpecialOffering, model.SpecialOfferingFilter]
	repo   repository.SpecialOfferingRepository
	images ImageResolver
}

func NewSpecialOfferingService(repo repository.SpecialOfferingRepository, images ImageResolver) SpecialOfferingService {
	return &specialOfferingService{
		reader: reader[model.SpecialOffering, model.SpecialOfferingFilter]{entity: "special offering", repo: repo},
		repo:   repo,
		images: images,
	}
}

func (s *specialOfferingService) check(req *model.SpecialOfferingRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return attachment.Validate(req.ImageInput(nil))
}

func (s *specialOfferingService) Create(ctx context.Context, req *model.SpecialOfferingRequest) (*model.SpecialOffering, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	image, err := s.images.Resolve(ctx, req.ImageInput(nil))
	if err != nil {
		return nil, err
	}

	o, err := s.repo.Create(ctx, req.Row(image))
	if err != nil {
		return nil, err
	}
	logWrite("special offering", "create", o.ID, string(o.VenueTag))
	return o, nil
}

func (s *specialOfferingService) Update(ctx context.Context, id uuid.UUID, req *model.SpecialOfferingRequest) (*model.SpecialOffering, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	image, err := s.images.Resolve(ctx, req.ImageInput(current.ImageURL))
	if err != nil {
		return nil, err
	}

	o, err := s.repo.Update(ctx, id, req.Row(image))
	if err != nil {
		return nil, err
	}
	logWrite("special offering", "update", o.ID, string(o.VenueTag))
	return o, nil
}
