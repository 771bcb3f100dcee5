package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	content "venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/instagram/model"
	"venue-content-backend/internal/infrastructure/database"
	"venue-content-backend/pkg/keycodec"
)

// PostRepository stores mirrored Instagram posts.
type PostRepository interface {
	// Upsert inserts by instagram_id or refreshes the upstream fields of the existing row.
	Upsert(ctx context.Context, row keycodec.Object) (*model.Post, error)
	Update(ctx context.Context, id uuid.UUID, row keycodec.Object) (*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	List(ctx context.Context, filter model.PostFilter) ([]model.Post, error)
	Count(ctx context.Context) (int64, error)
}

const (
	table  = "instagram_posts"
	entity = "instagram post"
)

var (
	conflictCols = []string{"instagram_id"}
	refreshCols  = []string{"image_url", "caption", "permalink", "timestamp"}
)

type postRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postRepository{pool: pool}
}

func (r *postRepository) Upsert(ctx context.Context, row keycodec.Object) (*model.Post, error) {
	return database.Upsert[model.Post](ctx, r.pool, table, entity,
		keycodec.DecodeObject(row), conflictCols, refreshCols)
}

func (r *postRepository) Update(ctx context.Context, id uuid.UUID, row keycodec.Object) (*model.Post, error) {
	return database.Update[model.Post](ctx, r.pool, table, entity, id, keycodec.DecodeObject(row))
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.DeleteByID(ctx, r.pool, table, entity, id)
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	return database.SelectOne[model.Post](ctx, r.pool, entity,
		"SELECT * FROM "+table+" WHERE id = $1", id)
}

func (r *postRepository) List(ctx context.Context, f model.PostFilter) ([]model.Post, error) {
	q := &database.Query{}
	if f.VisibleOnly {
		q.Where("is_visible = TRUE")
	}
	if f.Venue != "" {
		// untagged posts belong to every venue
		q.Where("venue_tag IS NULL OR venue_tag = %s OR venue_tag = %s", f.Venue, content.VenueBoth)
	}
	query, args := q.Build(table, `display_order ASC, "timestamp" DESC`, f.Limit)
	return database.SelectMany[model.Post](ctx, r.pool, entity, query, args...)
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	return database.Count(ctx, r.pool, table)
}
