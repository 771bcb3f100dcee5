package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/infrastructure/database"
)

type postRepository struct {
	table[model.Post, model.PostFilter]
}

func NewPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postRepository{table[model.Post, model.PostFilter]{
		pool:    pool,
		name:    "posts",
		entity:  "post",
		orderBy: "published_at DESC NULLS LAST, created_at DESC",
		where:   postWhere,
	}}
}

func postWhere(q *database.Query, f model.PostFilter) int {
	scopeVenue(q, f.Venue)
	if f.PublishedOnly {
		q.Where("is_published = TRUE")
	}
	return f.Limit
}
