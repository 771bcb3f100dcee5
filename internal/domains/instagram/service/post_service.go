package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"venue-content-backend/internal/domains/instagram/model"
	"venue-content-backend/internal/domains/instagram/repository"
)

// PostService serves mirrored posts and their curation.
type PostService interface {
	List(ctx context.Context, filter model.PostFilter) ([]model.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Curate(ctx context.Context, id uuid.UUID, patch *model.PostPatch) (*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type postService struct {
	repo repository.PostRepository
}

func NewPostService(repo repository.PostRepository) PostService {
	return &postService{repo: repo}
}

func (s *postService) List(ctx context.Context, filter model.PostFilter) ([]model.Post, error) {
	return s.repo.List(ctx, filter)
}

func (s *postService) Get(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *postService) Curate(ctx context.Context, id uuid.UUID, patch *model.PostPatch) (*model.Post, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	post, err := s.repo.Update(ctx, id, patch.Row())
	if err != nil {
		return nil, err
	}
	log.Info().Str("id", id.String()).Bool("visible", post.IsVisible).Msg("instagram post curated")
	return post, nil
}

// Delete removes the local copy only; the next sync brings it back unless it left the feed.
func (s *postService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("id", id.String()).Msg("instagram post deleted")
	return nil
}
