package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/infrastructure/database"
)

type videoRepository struct {
	table[model.Video, model.VideoFilter]
}

func NewVideoRepository(pool *pgxpool.Pool) VideoRepository {
	return &videoRepository{table[model.Video, model.VideoFilter]{
		pool:    pool,
		name:    "videos",
		entity:  "video",
		orderBy: "display_order ASC, created_at DESC",
		where:   videoWhere,
	}}
}

func videoWhere(q *database.Query, f model.VideoFilter) int {
	scopeVenue(q, f.Venue)
	if f.PerformerID != nil {
		q.Where("performer_id = %s", *f.PerformerID)
	}
	if f.FeaturedOnly {
		q.Where("is_featured = TRUE")
	}
	return f.Limit
}
