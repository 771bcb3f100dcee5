package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/content/repository"
	"venue-content-backend/internal/shared/apperror"
	"venue-content-backend/pkg/keycodec"
)

type operatingHourService struct {
	reader[model.OperatingHour, model.OperatingHourFilter]
	repo repository.OperatingHourRepository
}

func NewOperatingHourService(repo repository.OperatingHourRepository) OperatingHourService {
	return &operatingHourService{
		reader: reader[model.OperatingHour, model.OperatingHourFilter]{entity: "operating hour", repo: repo},
		repo:   repo,
	}
}

func (s *operatingHourService) Create(ctx context.Context, req *model.OperatingHourRequest) (*model.OperatingHour, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	h, err := s.repo.Create(ctx, req.Row())
	if err != nil {
		return nil, err
	}
	logWrite("operating hour", "create", h.ID, string(h.VenueTag))
	return h, nil
}

func (s *operatingHourService) Update(ctx context.Context, id uuid.UUID, req *model.OperatingHourRequest) (*model.OperatingHour, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	h, err := s.repo.Update(ctx, id, req.Row())
	if err != nil {
		return nil, err
	}
	logWrite("operating hour", "update", h.ID, string(h.VenueTag))
	return h, nil
}

// ReplaceWeek validates every day before writing any of them; duplicate days in one
// submission are rejected.
func (s *operatingHourService) ReplaceWeek(ctx context.Context, reqs []*model.OperatingHourRequest) ([]model.OperatingHour, error) {
	if len(reqs) == 0 {
		return nil, apperror.MissingRequiredField("hours")
	}

	seen := make(map[string]bool, len(reqs))
	rows := make([]keycodec.Object, 0, len(reqs))
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, err
		}
		key := string(req.VenueTag) + "/" + req.DayOfWeek
		if seen[key] {
			return nil, apperror.InvalidField("dayOfWeek", req.DayOfWeek+" is listed twice")
		}
		seen[key] = true
		rows = append(rows, req.Row())
	}

	hours, err := s.repo.ReplaceWeek(ctx, rows)
	if err != nil {
		return nil, err
	}
	log.Info().Int("days", len(hours)).Msg("operating hours replaced")
	return hours, nil
}
