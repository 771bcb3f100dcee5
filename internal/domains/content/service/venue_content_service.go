package service

import (
	"context"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/content/repository"
)

type venueContentService struct {
	reader[model.VenueContent, model.VenueContentFilter]
	repo repository.VenueContentRepository
}

func NewVenueContentService(repo repository.VenueContentRepository) VenueContentService {
	return &venueContentService{
		reader: reader[model.VenueContent, model.VenueContentFilter]{entity: "venue content", repo: repo},
		repo:   repo,
	}
}

func (s *venueContentService) Upsert(ctx context.Context, req *model.VenueContentRequest) (*model.VenueContent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c, err := s.repo.Upsert(ctx, req.Row())
	if err != nil {
		return nil, err
	}
	logWrite("venue content", "upsert", c.ID, string(c.VenueTag))
	return c, nil
}
