package service

import (
	"context"

	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/content/repository"
)

type dealService struct {
	reader[model.Deal, model.DealFilter]
	repo   repository.DealRepository
	images ImageResolver
}

func NewDealService(repo repository.DealRepository, images ImageResolver) DealService {
	return &dealService{
		reader: reader[model.Deal, model.DealFilter]{entity: "deal", repo: repo},
		repo:   repo,
		images: images,
	}
}

func (s *dealService) check(req *model.DealRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return attachment.Validate(req.ImageInput(nil))
}

func (s *dealService) Create(ctx context.Context, req *model.DealRequest) (*model.Deal, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	image, err := s.images.Resolve(ctx, req.ImageInput(nil))
	if err != nil {
		return nil, err
	}

	d, err := s.repo.Create(ctx, req.Row(image))
	if err != nil {
		return nil, err
	}
	logWrite("deal", "create", d.ID, string(d.VenueTag))
	return d, nil
}

func (s *dealService) Update(ctx context.Context, id uuid.UUID, req *model.DealRequest) (*model.Deal, error) {
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

	d, err := s.repo.Update(ctx, id, req.Row(image))
	if err != nil {
		return nil, err
	}
	logWrite("deal", "update", d.ID, string(d.VenueTag))
	return d, nil
}
