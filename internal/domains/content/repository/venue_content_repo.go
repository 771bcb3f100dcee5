package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/infrastructure/database"
	"venue-content-backend/pkg/keycodec"
)

type venueContentRepository struct {
	table[model.VenueContent, model.VenueContentFilter]
}

func NewVenueContentRepository(pool *pgxpool.Pool) VenueContentRepository {
	return &venueContentRepository{table[model.VenueContent, model.VenueContentFilter]{
		pool:    pool,
		name:    "venue_content",
		entity:  "venue content",
		orderBy: "content_key ASC",
		where: func(q *database.Query, f model.VenueContentFilter) int {
			scopeVenue(q, f.Venue)
			return 0
		},
	}}
}

var contentConflict = []string{"venue_tag", "content_key"}
var contentUpdates = []string{"content", "label"}

func (r *venueContentRepository) Upsert(ctx context.Context, row keycodec.Object) (*model.VenueContent, error) {
	return database.Upsert[model.VenueContent](ctx, r.pool, r.name, r.entity,
		keycodec.DecodeObject(row), contentConflict, contentUpdates)
}
