package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"venue-content-backend/internal/domains/instagram/repository"
	"venue-content-backend/internal/infrastructure/instagram"
	"venue-content-backend/internal/shared/apperror"
)

// Feed is the upstream media source.
type Feed interface {
	Configured() bool
	FetchMedia(ctx context.Context) ([]instagram.Media, error)
}

type State int32

const (
	StateIdle State = iota
	StateSyncing
)

func (s State) String() string {
	if s == StateSyncing {
		return "syncing"
	}
	return "idle"
}

// SyncError reports a run that stopped part way; Processed upserts stay committed.
type SyncError struct {
	Processed int
	Total     int
	Err       error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("feed sync stopped after %d of %d items: %v", e.Processed, e.Total, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// Synchronizer mirrors the upstream feed into the store. Only one run may be in
// flight per process.
type Synchronizer struct {
	feed  Feed
	repo  repository.PostRepository
	state atomic.Int32
}

func NewSynchronizer(feed Feed, repo repository.PostRepository) *Synchronizer {
	return &Synchronizer{feed: feed, repo: repo}
}

// Configured reports whether a feed with credentials is attached.
func (s *Synchronizer) Configured() bool {
	return s.feed != nil && s.feed.Configured()
}

func (s *Synchronizer) State() State {
	return State(s.state.Load())
}

// Sync fetches the feed and upserts every usable item by instagram_id, returning how
// many were written. An empty feed writes nothing and fails with EmptyFeed. The first
// failing upsert stops the run; earlier upserts are not rolled back.
func (s *Synchronizer) Sync(ctx context.Context) (int, error) {
	if !s.Configured() {
		return 0, apperror.MissingConfiguration("instagram access token")
	}
	if !s.state.CompareAndSwap(int32(StateIdle), int32(StateSyncing)) {
		return 0, apperror.SyncInProgress()
	}
	defer s.state.Store(int32(StateIdle))

	started := time.Now()
	media, err := s.feed.FetchMedia(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch feed: %w", err)
	}

	items := Normalize(media)
	if len(items) == 0 {
		log.Warn().Int("fetched", len(media)).Msg("instagram feed empty, store left untouched")
		return 0, apperror.EmptyFeed()
	}

	processed := 0
	for i, item := range items {
		if _, err := s.repo.Upsert(ctx, item.Row(i)); err != nil {
			log.Error().Err(err).
				Str("instagram_id", item.InstagramID).
				Int("processed", processed).
				Msg("instagram sync aborted")
			return processed, &SyncError{Processed: processed, Total: len(items), Err: err}
		}
		processed++
	}

	log.Info().
		Int("fetched", len(media)).
		Int("synced", processed).
		Dur("took", time.Since(started)).
		Msg("instagram sync finished")
	return processed, nil
}
