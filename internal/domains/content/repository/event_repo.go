package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/infrastructure/database"
)

type eventRepository struct {
	table[model.Event, model.EventFilter]
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{table[model.Event, model.EventFilter]{
		pool:    pool,
		name:    "events",
		entity:  "event",
		orderBy: "event_date DESC NULLS LAST, start_time ASC NULLS LAST",
		where:   eventWhere,
	}}
}

const upcomingOrder = "event_date ASC NULLS FIRST, start_time ASC NULLS LAST"

func eventWhere(q *database.Query, f model.EventFilter) int {
	scopeVenue(q, f.Venue)
	if f.Status != "" {
		q.Where("status = %s", f.Status)
	}
	if f.UpcomingFrom != nil {
		day := f.UpcomingFrom.Format("2006-01-02")
		q.Where("event_date >= %s::date OR (event_date IS NULL AND recurring_day IS NOT NULL)", day)
		// soonest first, so a limit trims the far future
		q.OrderBy(upcomingOrder)
	}
	if f.PerformerID != nil {
		q.Where("performer_id = %s", *f.PerformerID)
	}
	return f.Limit
}
