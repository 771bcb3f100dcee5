package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/content/repository"
)

type postService struct {
	reader[model.Post, model.PostFilter]
	repo   repository.PostRepository
	images ImageResolver
	now    func() time.Time
}

func NewPostService(repo repository.PostRepository, images ImageResolver) PostService {
	return &postService{
		reader: reader[model.Post, model.PostFilter]{entity: "post", repo: repo},
		repo:   repo,
		images: images,
		now:    time.Now,
	}
}

func (s *postService) check(req *model.PostRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return attachment.Validate(req.ImageInput(nil))
}

func (s *postService) Create(ctx context.Context, req *model.PostRequest) (*model.Post, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	image, err := s.images.Resolve(ctx, req.ImageInput(nil))
	if err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, req.Row(image, req.PublishedAt(nil, s.now().UTC())))
	if err != nil {
		return nil, err
	}
	logWrite("post", "create", p.ID, string(p.VenueTag))
	return p, nil
}

func (s *postService) Update(ctx context.Context, id uuid.UUID, req *model.PostRequest) (*model.Post, error) {
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

	publishedAt := req.PublishedAt(current.PublishedAt, s.now().UTC())
	p, err := s.repo.Update(ctx, id, req.Row(image, publishedAt))
	if err != nil {
		return nil, err
	}
	logWrite("post", "update", p.ID, string(p.VenueTag))
	return p, nil
}
