package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type store[T any, F any] interface {
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context, filter F) ([]T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// reader is embedded by every entity service.
type reader[T any, F any] struct {
	entity string
	repo   store[T, F]
}

func (r reader[T, F]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	return r.repo.GetByID(ctx, id)
}

func (r reader[T, F]) List(ctx context.Context, filter F) ([]T, error) {
	return r.repo.List(ctx, filter)
}

// Delete is physical; rows referencing the deleted one keep a NULL reference.
func (r reader[T, F]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("entity", r.entity).Str("id", id.String()).Msg("deleted")
	return nil
}

func logWrite(entity, action string, id uuid.UUID, venue string) {
	log.Info().
		Str("entity", entity).
		Str("action", action).
		Str("id", id.String()).
		Str("venue", venue).
		Msg("content written")
}
