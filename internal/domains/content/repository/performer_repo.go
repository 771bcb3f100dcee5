package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/infrastructure/database"
)

type performerRepository struct {
	table[model.Performer, model.PerformerFilter]
}

func NewPerformerRepository(pool *pgxpool.Pool) PerformerRepository {
	return &performerRepository{table[model.Performer, model.PerformerFilter]{
		pool:    pool,
		name:    "performers",
		entity:  "performer",
		orderBy: "is_featured DESC, name ASC",
		where:   performerWhere,
	}}
}

func performerWhere(q *database.Query, f model.PerformerFilter) int {
	scopeVenue(q, f.Venue)
	if f.Type != "" {
		q.Where("performer_type = %s", f.Type)
	}
	if f.FeaturedOnly {
		q.Where("is_featured = TRUE")
	}
	if f.Alumni != nil {
		q.Where("is_alumni = %s", *f.Alumni)
	}
	return f.Limit
}

func (r *performerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Performer, error) {
	if len(ids) == 0 {
		return []model.Performer{}, nil
	}
	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}
	return database.SelectMany[model.Performer](ctx, r.pool, r.entity,
		"SELECT * FROM performers WHERE id = ANY($1::uuid[])", strIDs)
}
