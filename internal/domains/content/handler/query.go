package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/shared/apperror"
)

const maxListLimit = 100

// adminVenue reads ?venue=; unlike public scopes it also accepts "both".
func adminVenue(c *gin.Context) (model.VenueTag, error) {
	raw := strings.TrimSpace(c.Query("venue"))
	if raw == "" {
		return "", nil
	}
	v := model.VenueTag(strings.ReplaceAll(strings.ToLower(raw), "-", "_"))
	if !v.Valid() {
		return "", apperror.InvalidField("venue", "must be rob_roy, konfusion or both")
	}
	return v, nil
}

func queryBool(c *gin.Context, key string) bool {
	b, _ := strconv.ParseBool(c.Query(key))
	return b
}

func queryOptBool(c *gin.Context, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperror.InvalidField(key, "must be true or false")
	}
	return &b, nil
}

func queryLimit(c *gin.Context, def int) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, apperror.InvalidField("limit", "must be a positive number")
	}
	if n > maxListLimit {
		n = maxListLimit
	}
	return n, nil
}

func queryUUID(c *gin.Context, key string) (*uuid.UUID, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperror.InvalidField(key, "must be a valid id")
	}
	return &id, nil
}

// queryDay resolves ?day= to a canonical weekday; "today" uses now.
func queryDay(c *gin.Context, now time.Time) (string, error) {
	raw := strings.TrimSpace(c.Query("day"))
	switch {
	case raw == "":
		return "", nil
	case strings.EqualFold(raw, "today"):
		return now.Weekday().String(), nil
	}
	day, ok := model.NormalizeDay(raw)
	if !ok {
		return "", apperror.InvalidField("day", "must be a weekday name")
	}
	return day, nil
}
