package repotest

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/model"
	igmodel "venue-content-backend/internal/domains/instagram/model"
	"venue-content-backend/pkg/keycodec"
)

func visible(tag, venue model.VenueTag) bool {
	switch venue {
	case "":
		return true
	case model.VenueBoth:
		return tag == model.VenueBoth
	default:
		return tag == venue || tag == model.VenueBoth
	}
}

func sameKeys(keys ...string) func(a, b map[string]any) bool {
	return func(a, b map[string]any) bool {
		for _, k := range keys {
			if a[k] != b[k] {
				return false
			}
		}
		return true
	}
}

// =====================================================
// PERFORMERS
// =====================================================

type Performers struct {
	*Table[model.Performer, model.PerformerFilter]
}

func NewPerformers() *Performers {
	t := NewTable[model.Performer, model.PerformerFilter]("performer")
	t.Match = func(p model.Performer, f model.PerformerFilter) bool {
		return visible(p.VenueTag, f.Venue) &&
			(f.Type == "" || p.PerformerType == f.Type) &&
			(!f.FeaturedOnly || p.IsFeatured) &&
			(f.Alumni == nil || p.IsAlumni == *f.Alumni)
	}
	t.Less = func(a, b model.Performer) bool {
		if a.IsFeatured != b.IsFeatured {
			return a.IsFeatured
		}
		return a.Name < b.Name
	}
	t.Limit = func(f model.PerformerFilter) int { return f.Limit }
	return &Performers{t}
}

func (p *Performers) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Performer, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := []model.Performer{}
	for _, item := range p.All() {
		if want[item.ID] {
			out = append(out, item)
		}
	}
	return out, nil
}

// =====================================================
// EVENTS
// =====================================================

func NewEvents() *Table[model.Event, model.EventFilter] {
	t := NewTable[model.Event, model.EventFilter]("event")
	t.Match = func(e model.Event, f model.EventFilter) bool {
		if !visible(e.VenueTag, f.Venue) || (f.Status != "" && e.Status != f.Status) {
			return false
		}
		if f.PerformerID != nil && (e.PerformerID == nil || *e.PerformerID != *f.PerformerID) {
			return false
		}
		if f.UpcomingFrom != nil {
			day := time.Date(f.UpcomingFrom.Year(), f.UpcomingFrom.Month(), f.UpcomingFrom.Day(), 0, 0, 0, 0, time.UTC)
			if e.EventDate != nil {
				return !e.EventDate.Before(day)
			}
			return e.RecurringDay != nil
		}
		return true
	}
	t.Less = func(a, b model.Event) bool {
		switch {
		case a.EventDate == nil && b.EventDate == nil:
			return false
		case a.EventDate == nil:
			return false
		case b.EventDate == nil:
			return true
		}
		return a.EventDate.After(*b.EventDate)
	}
	t.Order = func(f model.EventFilter) func(a, b model.Event) bool {
		if f.UpcomingFrom == nil {
			return nil
		}
		return soonestFirst
	}
	t.Limit = func(f model.EventFilter) int { return f.Limit }
	return t
}

// soonestFirst puts weekly slots ahead of dated events, then dates and start times ascending.
func soonestFirst(a, b model.Event) bool {
	switch {
	case a.EventDate == nil && b.EventDate == nil:
		return deref(a.StartTime) < deref(b.StartTime)
	case a.EventDate == nil:
		return true
	case b.EventDate == nil:
		return false
	case !a.EventDate.Equal(*b.EventDate):
		return a.EventDate.Before(*b.EventDate)
	}
	return deref(a.StartTime) < deref(b.StartTime)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// =====================================================
// DEALS
// =====================================================

func NewDeals() *Table[model.Deal, model.DealFilter] {
	t := NewTable[model.Deal, model.DealFilter]("deal")
	t.Match = func(d model.Deal, f model.DealFilter) bool {
		return visible(d.VenueTag, f.Venue) &&
			(f.Day == "" || d.RunsOn(f.Day)) &&
			(!f.ActiveOnly || d.IsActive)
	}
	t.Less = func(a, b model.Deal) bool {
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}
		return a.Title < b.Title
	}
	return t
}

// =====================================================
// GALLERY / VIDEOS / POSTS
// =====================================================

func NewGallery() *Table[model.GalleryImage, model.GalleryFilter] {
	t := NewTable[model.GalleryImage, model.GalleryFilter]("gallery image")
	t.Match = func(g model.GalleryImage, f model.GalleryFilter) bool {
		return visible(g.VenueTag, f.Venue) &&
			(f.Category == "" || (g.Category != nil && *g.Category == f.Category)) &&
			(!f.FeaturedOnly || g.IsFeatured)
	}
	t.Less = func(a, b model.GalleryImage) bool { return a.DisplayOrder < b.DisplayOrder }
	t.Limit = func(f model.GalleryFilter) int { return f.Limit }
	return t
}

func NewVideos() *Table[model.Video, model.VideoFilter] {
	t := NewTable[model.Video, model.VideoFilter]("video")
	t.Match = func(v model.Video, f model.VideoFilter) bool {
		return visible(v.VenueTag, f.Venue) && (!f.FeaturedOnly || v.IsFeatured)
	}
	t.Less = func(a, b model.Video) bool { return a.DisplayOrder < b.DisplayOrder }
	t.Limit = func(f model.VideoFilter) int { return f.Limit }
	return t
}

func NewPosts() *Table[model.Post, model.PostFilter] {
	t := NewTable[model.Post, model.PostFilter]("post")
	t.Match = func(p model.Post, f model.PostFilter) bool {
		return visible(p.VenueTag, f.Venue) && (!f.PublishedOnly || p.IsPublished)
	}
	t.Less = func(a, b model.Post) bool {
		if a.PublishedAt == nil || b.PublishedAt == nil {
			return a.PublishedAt != nil
		}
		return a.PublishedAt.After(*b.PublishedAt)
	}
	t.Limit = func(f model.PostFilter) int { return f.Limit }
	return t
}

// =====================================================
// HOURS / OFFERINGS / CONTENT
// =====================================================

type Hours struct {
	*Table[model.OperatingHour, model.OperatingHourFilter]
}

func NewHours() *Hours {
	t := NewTable[model.OperatingHour, model.OperatingHourFilter]("operating hour")
	t.Match = func(h model.OperatingHour, f model.OperatingHourFilter) bool { return visible(h.VenueTag, f.Venue) }
	t.Less = func(a, b model.OperatingHour) bool {
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}
		return a.VenueTag != model.VenueBoth && b.VenueTag == model.VenueBoth
	}
	t.Unique = sameKeys("venue_tag", "day_of_week")
	t.OnConflict = []string{"open_time", "close_time", "is_closed", "display_order"}
	return &Hours{t}
}

func (h *Hours) ReplaceWeek(ctx context.Context, rows []keycodec.Object) ([]model.OperatingHour, error) {
	out := make([]model.OperatingHour, 0, len(rows))
	for _, row := range rows {
		item, err := h.Upsert(ctx, row)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, nil
}

func NewOfferings() *Table[model.SpecialOffering, model.SpecialOfferingFilter] {
	t := NewTable[model.SpecialOffering, model.SpecialOfferingFilter]("special offering")
	t.Match = func(o model.SpecialOffering, f model.SpecialOfferingFilter) bool {
		return visible(o.VenueTag, f.Venue) &&
			(f.Type == "" || o.OfferingType == f.Type) &&
			(!f.ActiveOnly || o.IsActive)
	}
	t.Less = func(a, b model.SpecialOffering) bool {
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}
		return strings.Compare(a.Title, b.Title) < 0
	}
	return t
}

func NewVenueContent() *Table[model.VenueContent, model.VenueContentFilter] {
	t := NewTable[model.VenueContent, model.VenueContentFilter]("venue content")
	t.Match = func(c model.VenueContent, f model.VenueContentFilter) bool { return visible(c.VenueTag, f.Venue) }
	t.Less = func(a, b model.VenueContent) bool { return a.ContentKey < b.ContentKey }
	t.Unique = sameKeys("venue_tag", "content_key")
	t.OnConflict = []string{"content", "label"}
	return t
}

// =====================================================
// INSTAGRAM
// =====================================================

func NewInstagramPosts() *Table[igmodel.Post, igmodel.PostFilter] {
	t := NewTable[igmodel.Post, igmodel.PostFilter]("instagram post")
	t.Match = func(p igmodel.Post, f igmodel.PostFilter) bool {
		if f.VisibleOnly && !p.IsVisible {
			return false
		}
		return f.Venue == "" || p.VenueTag == nil || *p.VenueTag == f.Venue || *p.VenueTag == model.VenueBoth
	}
	t.Less = func(a, b igmodel.Post) bool {
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}
		return a.Timestamp.After(b.Timestamp)
	}
	t.Unique = sameKeys("instagram_id")
	t.OnConflict = []string{"image_url", "caption", "permalink", "timestamp"}
	return t
}
