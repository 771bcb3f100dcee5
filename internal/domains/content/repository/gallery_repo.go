package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/infrastructure/database"
)

type galleryImageRepository struct {
	table[model.GalleryImage, model.GalleryFilter]
}

func NewGalleryImageRepository(pool *pgxpool.Pool) GalleryImageRepository {
	return &galleryImageRepository{table[model.GalleryImage, model.GalleryFilter]{
		pool:    pool,
		name:    "gallery_images",
		entity:  "gallery image",
		orderBy: "display_order ASC, created_at DESC",
		where:   galleryWhere,
	}}
}

func galleryWhere(q *database.Query, f model.GalleryFilter) int {
	scopeVenue(q, f.Venue)
	if f.Category != "" {
		q.Where("category = %s", f.Category)
	}
	if f.EventID != nil {
		q.Where("event_id = %s", *f.EventID)
	}
	if f.FeaturedOnly {
		q.Where("is_featured = TRUE")
	}
	return f.Limit
}
