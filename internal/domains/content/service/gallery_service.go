package service

import (
	"context"

	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/content/repository"
)

type galleryImageService struct {
	reader[model.GalleryImage, model.GalleryFilter]
	repo   repository.GalleryImageRepository
	images ImageResolver
}

func NewGalleryImageService(repo repository.GalleryImageRepository, images ImageResolver) GalleryImageService {
	return &galleryImageService{
		reader: reader[model.GalleryImage, model.GalleryFilter]{entity: "gallery image", repo: repo},
		repo:   repo,
		images: images,
	}
}

func (s *galleryImageService) check(req *model.GalleryImageRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return attachment.Validate(req.ImageInput(nil))
}

func (s *galleryImageService) Create(ctx context.Context, req *model.GalleryImageRequest) (*model.GalleryImage, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	image, err := s.images.Resolve(ctx, req.ImageInput(nil))
	if err != nil {
		return nil, err
	}

	g, err := s.repo.Create(ctx, req.Row(*image))
	if err != nil {
		return nil, err
	}
	logWrite("gallery image", "create", g.ID, string(g.VenueTag))
	return g, nil
}

func (s *galleryImageService) Update(ctx context.Context, id uuid.UUID, req *model.GalleryImageRequest) (*model.GalleryImage, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	image, err := s.images.Resolve(ctx, req.ImageInput(&current.ImageURL))
	if err != nil {
		return nil, err
	}

	g, err := s.repo.Update(ctx, id, req.Row(*image))
	if err != nil {
		return nil, err
	}
	logWrite("gallery image", "update", g.ID, string(g.VenueTag))
	return g, nil
}
