package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	content "venue-content-backend/internal/domains/content/model"
	contentrepo "venue-content-backend/internal/domains/content/repository"
	"venue-content-backend/internal/domains/dashboard/model"
	igmodel "venue-content-backend/internal/domains/instagram/model"
	igrepo "venue-content-backend/internal/domains/instagram/repository"
)

const (
	pageEventLimit     = 20
	pagePerformerLimit = 12
	pageGalleryLimit   = 12
	pagePostLimit      = 3
	pageInstagramLimit = 12
)

// Repositories is every store the aggregator reads from.
type Repositories struct {
	Performers contentrepo.PerformerRepository
	Events     contentrepo.EventRepository
	Deals      contentrepo.DealRepository
	Gallery    contentrepo.GalleryImageRepository
	Videos     contentrepo.VideoRepository
	Posts      contentrepo.PostRepository
	Hours      contentrepo.OperatingHourRepository
	Offerings  contentrepo.SpecialOfferingRepository
	Content    contentrepo.VenueContentRepository
	Instagram  igrepo.PostRepository
}

// Aggregator runs independent reads concurrently and joins them in memory. Reads do not
// share a snapshot; the first failing read fails the whole aggregate.
type Aggregator struct {
	repos Repositories
}

func NewAggregator(repos Repositories) *Aggregator {
	return &Aggregator{repos: repos}
}

func (a *Aggregator) Counts(ctx context.Context) (*model.Counts, error) {
	var out model.Counts
	g, ctx := errgroup.WithContext(ctx)

	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(ctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	count(&out.Performers, a.repos.Performers.Count)
	count(&out.Events, a.repos.Events.Count)
	count(&out.Deals, a.repos.Deals.Count)
	count(&out.GalleryImages, a.repos.Gallery.Count)
	count(&out.Videos, a.repos.Videos.Count)
	count(&out.Posts, a.repos.Posts.Count)
	count(&out.OperatingHours, a.repos.Hours.Count)
	count(&out.Offerings, a.repos.Offerings.Count)
	count(&out.VenueContent, a.repos.Content.Count)
	count(&out.InstagramPosts, a.repos.Instagram.Count)

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &out, nil
}

// VenuePage gathers one venue's home page as of now.
func (a *Aggregator) VenuePage(ctx context.Context, venue content.VenueTag, now time.Time) (*model.VenuePage, error) {
	page := model.EmptyPage(venue, now.Weekday().String())
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		events, err := a.EventsWithPerformers(ctx, content.EventFilter{
			Venue:        venue,
			Status:       content.EventPublished,
			UpcomingFrom: &now,
			Limit:        pageEventLimit,
		})
		page.UpcomingEvents = events
		return err
	})
	g.Go(func() error {
		deals, err := a.repos.Deals.List(ctx, content.DealFilter{Venue: venue, Day: page.Day, ActiveOnly: true})
		page.TodaysDeals = deals
		return err
	})
	g.Go(func() error {
		performers, err := a.repos.Performers.List(ctx, content.PerformerFilter{Venue: venue, FeaturedOnly: true, Limit: pagePerformerLimit})
		page.FeaturedPerformers = performers
		return err
	})
	g.Go(func() error {
		hours, err := a.repos.Hours.List(ctx, content.OperatingHourFilter{Venue: venue})
		page.Hours = hours
		return err
	})
	g.Go(func() error {
		offerings, err := a.repos.Offerings.List(ctx, content.SpecialOfferingFilter{Venue: venue, ActiveOnly: true})
		page.Offerings = offerings
		return err
	})
	g.Go(func() error {
		posts, err := a.repos.Posts.List(ctx, content.PostFilter{Venue: venue, PublishedOnly: true, Limit: pagePostLimit})
		page.LatestPosts = posts
		return err
	})
	g.Go(func() error {
		images, err := a.repos.Gallery.List(ctx, content.GalleryFilter{Venue: venue, FeaturedOnly: true, Limit: pageGalleryLimit})
		page.Gallery = images
		return err
	})
	g.Go(func() error {
		items, err := a.repos.Content.List(ctx, content.VenueContentFilter{Venue: venue})
		page.Content = content.ContentMap(items)
		return err
	})
	g.Go(func() error {
		posts, err := a.repos.Instagram.List(ctx, igmodel.PostFilter{Venue: venue, VisibleOnly: true, Limit: pageInstagramLimit})
		page.Instagram = posts
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("venue page %s: %w", venue, err)
	}
	return page, nil
}

// EventsWithPerformers lists events and attaches their performers. References to
// deleted performers resolve to nil.
func (a *Aggregator) EventsWithPerformers(ctx context.Context, filter content.EventFilter) ([]model.EventWithPerformer, error) {
	events, err := a.repos.Events.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	seen := map[uuid.UUID]bool{}
	ids := []uuid.UUID{}
	for _, e := range events {
		if e.PerformerID != nil && !seen[*e.PerformerID] {
			seen[*e.PerformerID] = true
			ids = append(ids, *e.PerformerID)
		}
	}

	performers := map[uuid.UUID]*model.PerformerRef{}
	if len(ids) > 0 {
		found, err := a.repos.Performers.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			performers[p.ID] = &model.PerformerRef{
				ID:              p.ID,
				Name:            p.Name,
				PerformerType:   p.PerformerType,
				ProfileImageURL: p.ProfileImageURL,
			}
		}
	}

	out := make([]model.EventWithPerformer, len(events))
	for i, e := range events {
		out[i] = model.EventWithPerformer{Event: e, ScheduleLabel: e.ScheduleLabel()}
		if e.PerformerID != nil {
			out[i].Performer = performers[*e.PerformerID]
		}
	}
	return out, nil
}
