package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/infrastructure/database"
	pkgdb "venue-content-backend/pkg/database"
	"venue-content-backend/pkg/keycodec"
)

type operatingHourRepository struct {
	table[model.OperatingHour, model.OperatingHourFilter]
}

func NewOperatingHourRepository(pool *pgxpool.Pool) OperatingHourRepository {
	return &operatingHourRepository{table[model.OperatingHour, model.OperatingHourFilter]{
		pool:    pool,
		name:    "operating_hours",
		entity:  "operating hour",
		orderBy: hoursOrder,
		where: func(q *database.Query, f model.OperatingHourFilter) int {
			scopeVenue(q, f.Venue)
			return 0
		},
	}}
}

// hoursOrder puts a venue's own row ahead of the shared "both" row for the same slot.
const hoursOrder = "display_order ASC, venue_tag = 'both' ASC, " +
	"array_position(ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday'], day_of_week::text) ASC"

var hourConflict = []string{"venue_tag", "day_of_week"}
var hourUpdates = []string{"open_time", "close_time", "is_closed", "display_order"}

func (r *operatingHourRepository) ReplaceWeek(ctx context.Context, rows []keycodec.Object) ([]model.OperatingHour, error) {
	return pkgdb.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) ([]model.OperatingHour, error) {
		out := make([]model.OperatingHour, 0, len(rows))
		for _, row := range rows {
			h, err := database.Upsert[model.OperatingHour](ctx, tx, r.name, r.entity,
				keycodec.DecodeObject(row), hourConflict, hourUpdates)
			if err != nil {
				return nil, err
			}
			out = append(out, *h)
		}
		return out, nil
	})
}
