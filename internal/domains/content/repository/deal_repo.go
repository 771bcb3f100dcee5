package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/infrastructure/database"
)

type dealRepository struct {
	table[model.Deal, model.DealFilter]
}

func NewDealRepository(pool *pgxpool.Pool) DealRepository {
	return &dealRepository{table[model.Deal, model.DealFilter]{
		pool:    pool,
		name:    "deals",
		entity:  "deal",
		orderBy: "display_order ASC, title ASC",
		where:   dealWhere,
	}}
}

// dealWhere treats a NULL day_of_week as "every day".
func dealWhere(q *database.Query, f model.DealFilter) int {
	scopeVenue(q, f.Venue)
	if f.Day != "" {
		q.Where("day_of_week = %s OR day_of_week IS NULL", f.Day)
	}
	if f.ActiveOnly {
		q.Where("is_active = TRUE")
	}
	return 0
}
