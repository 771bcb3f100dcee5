package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/shared/apperror"
)

func TestCheckPerformerVenueMatrix(t *testing.T) {
	venues := []model.VenueTag{model.VenueRobRoy, model.VenueKonfusion, model.VenueBoth}
	types := []model.PerformerType{model.PerformerDJ, model.PerformerBand, model.PerformerSoloArtist}

	for _, v := range venues {
		for _, pt := range types {
			err := CheckPerformerVenue(v, pt)
			shouldFail := (v == model.VenueKonfusion || v == model.VenueBoth) && pt != model.PerformerDJ
			if shouldFail {
				assert.True(t, apperror.Is(err, apperror.KindDomainRule), "%s/%s", v, pt)
			} else {
				assert.NoError(t, err, "%s/%s", v, pt)
			}
		}
	}
}

func TestCheckEventSchedule(t *testing.T) {
	date := time.Date(2026, 11, 7, 0, 0, 0, 0, time.UTC)
	friday := "Friday"
	blank := "  "

	assert.NoError(t, CheckEventSchedule(&date, nil))
	assert.NoError(t, CheckEventSchedule(nil, &friday))
	assert.NoError(t, CheckEventSchedule(&date, &friday), "both present is accepted")

	assert.True(t, apperror.Is(CheckEventSchedule(nil, nil), apperror.KindDomainRule))
	assert.True(t, apperror.Is(CheckEventSchedule(nil, &blank), apperror.KindDomainRule))
	zero := time.Time{}
	assert.True(t, apperror.Is(CheckEventSchedule(&zero, nil), apperror.KindDomainRule))
}
