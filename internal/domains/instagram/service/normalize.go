package service

import (
	"strings"
	"time"

	"venue-content-backend/internal/domains/instagram/model"
	"venue-content-backend/internal/infrastructure/instagram"
)

// The Graph API sends "2026-10-01T20:00:00+0000", which is not RFC 3339.
const graphTimeLayout = "2006-01-02T15:04:05-0700"

// Normalize turns raw media into feed items. Items without any image, without a
// permalink, or with an unreadable timestamp are dropped. Videos use their thumbnail.
func Normalize(media []instagram.Media) []model.FeedItem {
	items := make([]model.FeedItem, 0, len(media))
	for _, m := range media {
		image := m.MediaURL
		if strings.EqualFold(m.MediaType, "VIDEO") || image == "" {
			image = firstNonEmpty(m.ThumbnailURL, m.MediaURL)
		}
		if m.ID == "" || image == "" || m.Permalink == "" || m.Timestamp == "" {
			continue
		}
		ts, err := parseTimestamp(m.Timestamp)
		if err != nil {
			continue
		}
		var caption *string
		if c := strings.TrimSpace(m.Caption); c != "" {
			caption = &c
		}
		items = append(items, model.FeedItem{
			InstagramID: m.ID,
			ImageURL:    image,
			Caption:     caption,
			Permalink:   m.Permalink,
			Timestamp:   ts.UTC(),
		})
	}
	return items
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(graphTimeLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
