package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/infrastructure/database"
)

type specialOfferingRepository struct {
	table[model.SpecialOffering, model.SpecialOfferingFilter]
}

func NewSpecialOfferingRepository(pool *pgxpool.Pool) SpecialOfferingRepository {
	return &specialOfferingRepository{table[model.SpecialOffering, model.SpecialOfferingFilter]{
		pool:    pool,
		name:    "special_offerings",
		entity:  "special offering",
		orderBy: "display_order ASC, title ASC",
		where:   offeringWhere,
	}}
}

func offeringWhere(q *database.Query, f model.SpecialOfferingFilter) int {
	scopeVenue(q, f.Venue)
	if f.Type != "" {
		q.Where("offering_type = %s", f.Type)
	}
	if f.ActiveOnly {
		q.Where("is_active = TRUE")
	}
	return 0
}
