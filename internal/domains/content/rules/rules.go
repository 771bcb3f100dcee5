// Package rules holds the cross-field invariants that depend on venue scope and entity
// subtype. Everything here is pure: no I/O, no clocks.
package rules

import (
	"fmt"
	"strings"
	"time"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/shared/apperror"
)

// RequiresDJ reports whether performers tagged with venue must be DJs. Konfusion is a
// DJ-only room, and "both" inherits the stricter venue's constraint.
func RequiresDJ(venue model.VenueTag) bool {
	return venue == model.VenueKonfusion || venue == model.VenueBoth
}

// CheckPerformerVenue rejects non-DJ performers on DJ-only scopes.
func CheckPerformerVenue(venue model.VenueTag, performerType model.PerformerType) error {
	if RequiresDJ(venue) && performerType != model.PerformerDJ {
		return apperror.DomainRule("performerType",
			fmt.Sprintf("only DJs can be listed for %s (got %s)", venue, performerType))
	}
	return nil
}

// CheckEventSchedule requires a concrete date or a weekly recurring day. Having both is
// accepted; the date then takes precedence (see model.Event.IsOneOff).
func CheckEventSchedule(eventDate *time.Time, recurringDay *string) error {
	hasDate := eventDate != nil && !eventDate.IsZero()
	hasDay := recurringDay != nil && strings.TrimSpace(*recurringDay) != ""
	if !hasDate && !hasDay {
		return apperror.DomainRule("eventDate",
			"an event needs either an event date or a recurring day")
	}
	return nil
}
