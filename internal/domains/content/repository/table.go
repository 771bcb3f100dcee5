package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/infrastructure/database"
	"venue-content-backend/pkg/keycodec"
)

// table implements Repository for one table; entity repos embed it and supply the
// filter translation and default ordering.
type table[T any, F any] struct {
	pool    *pgxpool.Pool
	name    string
	entity  string
	orderBy string
	where   func(q *database.Query, filter F) (limit int)
}

func (t *table[T, F]) Create(ctx context.Context, row keycodec.Object) (*T, error) {
	return database.Insert[T](ctx, t.pool, t.name, t.entity, keycodec.DecodeObject(row))
}

func (t *table[T, F]) Update(ctx context.Context, id uuid.UUID, row keycodec.Object) (*T, error) {
	return database.Update[T](ctx, t.pool, t.name, t.entity, id, keycodec.DecodeObject(row))
}

func (t *table[T, F]) Delete(ctx context.Context, id uuid.UUID) error {
	return database.DeleteByID(ctx, t.pool, t.name, t.entity, id)
}

func (t *table[T, F]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	return database.SelectOne[T](ctx, t.pool, t.entity,
		"SELECT * FROM "+t.name+" WHERE id = $1", id)
}

func (t *table[T, F]) List(ctx context.Context, filter F) ([]T, error) {
	query, args := t.listQuery(filter)
	return database.SelectMany[T](ctx, t.pool, t.entity, query, args...)
}

func (t *table[T, F]) listQuery(filter F) (string, []any) {
	q := &database.Query{}
	limit := 0
	if t.where != nil {
		limit = t.where(q, filter)
	}
	return q.Build(t.name, t.orderBy, limit)
}

func (t *table[T, F]) Count(ctx context.Context) (int64, error) {
	return database.Count(ctx, t.pool, t.name)
}

// scopeVenue matches rows visible on venue: its own rows plus shared ("both") rows.
// Filtering by "both" itself returns only the shared rows.
func scopeVenue(q *database.Query, venue model.VenueTag) {
	switch venue {
	case "":
	case model.VenueBoth:
		q.Where("venue_tag = %s", venue)
	default:
		q.Where("venue_tag = %s OR venue_tag = 'both'", venue)
	}
}
