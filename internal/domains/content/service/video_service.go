package service

import (
	"context"

	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/content/repository"
)

type videoService struct {
	reader[model.Video, model.VideoFilter]
	repo   repository.VideoRepository
	images ImageResolver
}

func NewVideoService(repo repository.VideoRepository, images ImageResolver) VideoService {
	return &videoService{
		reader: reader[model.Video, model.VideoFilter]{entity: "video", repo: repo},
		repo:   repo,
		images: images,
	}
}

func (s *videoService) check(req *model.VideoRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return attachment.Validate(req.ImageInput(nil))
}

func (s *videoService) Create(ctx context.Context, req *model.VideoRequest) (*model.Video, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	thumb, err := s.images.Resolve(ctx, req.ImageInput(nil))
	if err != nil {
		return nil, err
	}

	v, err := s.repo.Create(ctx, req.Row(thumb))
	if err != nil {
		return nil, err
	}
	logWrite("video", "create", v.ID, string(v.VenueTag))
	return v, nil
}

func (s *videoService) Update(ctx context.Context, id uuid.UUID, req *model.VideoRequest) (*model.Video, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	thumb, err := s.images.Resolve(ctx, req.ImageInput(current.ThumbnailURL))
	if err != nil {
		return nil, err
	}

	v, err := s.repo.Update(ctx, id, req.Row(thumb))
	if err != nil {
		return nil, err
	}
	logWrite("video", "update", v.ID, string(v.VenueTag))
	return v, nil
}
