package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/content/repository/repotest"
	"venue-content-backend/internal/shared/apperror"
)

// =====================================================
// FAKES
// =====================================================

type memStorage struct {
	puts []string
	err  error
}

func (m *memStorage) Put(_ context.Context, path string, _ []byte, _ string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.puts = append(m.puts, path)
	return m.PublicURL(path), nil
}

func (m *memStorage) PublicURL(path string) string { return "https://cdn.test/" + path }

func ptr[T any](v T) *T { return &v }

func jpeg() *attachment.File {
	return &attachment.File{Filename: "nova.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}}
}

// =====================================================
// PERFORMERS
// =====================================================

func TestPerformerDJOnlyVenueRejectsBandBeforeWriting(t *testing.T) {
	repo := repotest.NewPerformers()
	storage := &memStorage{}
	svc := NewPerformerService(repo, attachment.NewResolver(storage, nil))
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.PerformerRequest{
		Name:          "DJ Nova",
		PerformerType: model.PerformerBand,
		VenueTag:      model.VenueKonfusion,
		Bio:           "...",
		ProfileImage:  jpeg(),
	})

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindDomainRule))
	assert.Zero(t, repo.Writes)
	assert.Empty(t, storage.puts, "nothing is uploaded for a rejected write")

	listed, err := svc.List(ctx, model.PerformerFilter{Venue: model.VenueKonfusion})
	require.NoError(t, err)
	for _, p := range listed {
		assert.NotEqual(t, "DJ Nova", p.Name)
	}
}

func TestPerformerRuleHoldsForEveryTypeAndScope(t *testing.T) {
	svc := NewPerformerService(repotest.NewPerformers(), attachment.NewResolver(&memStorage{}, nil))

	for _, venue := range []model.VenueTag{model.VenueKonfusion, model.VenueBoth} {
		for _, pt := range []model.PerformerType{model.PerformerBand, model.PerformerSoloArtist} {
			_, err := svc.Create(context.Background(), &model.PerformerRequest{
				Name: "Act", PerformerType: pt, VenueTag: venue, Bio: "bio",
				ProfileImageURL: "https://img.test/a.jpg",
			})
			assert.True(t, apperror.Is(err, apperror.KindDomainRule), "%s/%s", venue, pt)
		}
	}
}

func TestPerformerCreateRequiresProfileImage(t *testing.T) {
	repo := repotest.NewPerformers()
	svc := NewPerformerService(repo, attachment.NewResolver(&memStorage{}, nil))

	_, err := svc.Create(context.Background(), &model.PerformerRequest{
		Name: "DJ Nova", PerformerType: model.PerformerDJ, VenueTag: model.VenueKonfusion, Bio: "bio",
	})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "profileImageUrl", appErr.Field)
	assert.Zero(t, repo.Writes)
}

func TestPerformerFirstMissingFieldShortCircuits(t *testing.T) {
	svc := NewPerformerService(repotest.NewPerformers(), attachment.NewResolver(&memStorage{}, nil))

	_, err := svc.Create(context.Background(), &model.PerformerRequest{VenueTag: model.VenueRobRoy})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "name", appErr.Field)
	assert.Equal(t, apperror.CodeMissingRequiredField, appErr.Code)
}

func TestPerformerUpdateKeepsPreviousImage(t *testing.T) {
	repo := repotest.NewPerformers()
	storage := &memStorage{}
	svc := NewPerformerService(repo, attachment.NewResolver(storage, nil))
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.PerformerRequest{
		Name: "DJ Nova", PerformerType: model.PerformerDJ, VenueTag: model.VenueKonfusion,
		Bio: "bio", ProfileImage: jpeg(),
	})
	require.NoError(t, err)
	require.Len(t, storage.puts, 1)
	assert.Contains(t, created.ProfileImageURL, "https://cdn.test/performers/")

	updated, err := svc.Update(ctx, created.ID, &model.PerformerRequest{
		Name: "DJ Nova", PerformerType: model.PerformerDJ, VenueTag: model.VenueKonfusion,
		Bio: "new bio", IsFeatured: true,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ProfileImageURL, updated.ProfileImageURL)
	assert.Equal(t, "new bio", updated.Bio)
	assert.True(t, updated.IsFeatured)
	assert.Len(t, storage.puts, 1, "no new upload on update without a file")
}

func TestPerformerRejectsNonImageUpload(t *testing.T) {
	storage := &memStorage{}
	svc := NewPerformerService(repotest.NewPerformers(), attachment.NewResolver(storage, nil))

	_, err := svc.Create(context.Background(), &model.PerformerRequest{
		Name: "DJ Nova", PerformerType: model.PerformerDJ, VenueTag: model.VenueRobRoy, Bio: "bio",
		ProfileImage: &attachment.File{Filename: "rider.pdf", ContentType: "application/pdf", Data: []byte("%PDF")},
	})

	assert.True(t, apperror.Is(err, apperror.KindInvalidAttachment))
	assert.Empty(t, storage.puts)
}

func TestPerformerStoreFailureIsReported(t *testing.T) {
	repo := repotest.NewPerformers()
	repo.Err = apperror.Persistence("connection refused", errors.New("dial tcp"))
	svc := NewPerformerService(repo, attachment.NewResolver(&memStorage{}, nil))

	_, err := svc.Create(context.Background(), &model.PerformerRequest{
		Name: "DJ Nova", PerformerType: model.PerformerDJ, VenueTag: model.VenueRobRoy, Bio: "bio",
		ProfileImageURL: "https://img.test/nova.jpg",
	})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindPersistence, appErr.Kind)
	assert.Equal(t, "connection refused", appErr.Message)
}

// =====================================================
// EVENTS
// =====================================================

func TestEventNeedsDateOrRecurringDay(t *testing.T) {
	repo := repotest.NewEvents()
	svc := NewEventService(repo, attachment.NewResolver(&memStorage{}, nil))
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.EventRequest{Title: "Open Mic", VenueTag: model.VenueRobRoy})
	assert.True(t, apperror.Is(err, apperror.KindDomainRule))
	assert.Zero(t, repo.Writes)

	weekly, err := svc.Create(ctx, &model.EventRequest{
		Title: "Open Mic", VenueTag: model.VenueRobRoy, RecurringDay: ptr("wednesday"),
		StartTime: ptr("21:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Wednesday", *weekly.RecurringDay)
	assert.Equal(t, model.EventPublished, weekly.Status)
	assert.True(t, weekly.IsRecurring())

	date := time.Date(2026, 11, 7, 20, 30, 0, 0, time.UTC)
	oneOff, err := svc.Create(ctx, &model.EventRequest{
		Title: "Halloween Bash", VenueTag: model.VenueKonfusion, EventDate: &date,
		CoverCharge: ptr(decimal.RequireFromString("15.00")),
	})
	require.NoError(t, err)
	assert.True(t, oneOff.IsOneOff())
	assert.True(t, oneOff.CoverCharge.Equal(decimal.NewFromInt(15)))
}

func TestEventWithDateAndRecurringDayIsOneOff(t *testing.T) {
	svc := NewEventService(repotest.NewEvents(), attachment.NewResolver(&memStorage{}, nil))
	date := time.Date(2026, 11, 6, 0, 0, 0, 0, time.UTC)

	e, err := svc.Create(context.Background(), &model.EventRequest{
		Title: "Friday Special", VenueTag: model.VenueRobRoy, EventDate: &date, RecurringDay: ptr("Friday"),
	})

	require.NoError(t, err)
	assert.True(t, e.IsOneOff())
	assert.False(t, e.IsRecurring())
	assert.Equal(t, "Fri Nov 6, 2026", e.ScheduleLabel())
}

func TestEventRejectsBadClockTime(t *testing.T) {
	svc := NewEventService(repotest.NewEvents(), attachment.NewResolver(&memStorage{}, nil))

	_, err := svc.Create(context.Background(), &model.EventRequest{
		Title: "Late", VenueTag: model.VenueRobRoy, RecurringDay: ptr("Friday"), StartTime: ptr("25:00"),
	})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "startTime", appErr.Field)
}

// =====================================================
// DEALS
// =====================================================

func TestDealDayFilterIncludesDailyDeals(t *testing.T) {
	repo := repotest.NewDeals()
	svc := NewDealService(repo, attachment.NewResolver(&memStorage{}, nil))
	ctx := context.Background()

	toonie, err := svc.Create(ctx, &model.DealRequest{
		Title: "Toonie Tuesday", Description: "$2 drinks", DayOfWeek: ptr("Tuesday"),
		VenueTag: model.VenueRobRoy, IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tuesday", *toonie.DayOfWeek)

	_, err = svc.Create(ctx, &model.DealRequest{
		Title: "Happy Hour", Description: "Half price apps", VenueTag: model.VenueBoth, IsActive: true,
	})
	require.NoError(t, err)

	tuesday, err := svc.List(ctx, model.DealFilter{Venue: model.VenueRobRoy, Day: "Tuesday", ActiveOnly: true})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Toonie Tuesday", "Happy Hour"}, dealTitles(tuesday))

	friday, err := svc.List(ctx, model.DealFilter{Venue: model.VenueRobRoy, Day: "Friday", ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Happy Hour"}, dealTitles(friday))

	konfusion, err := svc.List(ctx, model.DealFilter{Venue: model.VenueKonfusion})
	require.NoError(t, err)
	assert.Equal(t, []string{"Happy Hour"}, dealTitles(konfusion))
}

func TestDealRequiresDescription(t *testing.T) {
	svc := NewDealService(repotest.NewDeals(), attachment.NewResolver(&memStorage{}, nil))

	_, err := svc.Create(context.Background(), &model.DealRequest{Title: "Toonie Tuesday", VenueTag: model.VenueRobRoy})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "description", appErr.Field)
}

func dealTitles(deals []model.Deal) []string {
	out := make([]string, len(deals))
	for i, d := range deals {
		out[i] = d.Title
	}
	return out
}

// =====================================================
// GALLERY / VIDEOS / POSTS / OFFERINGS
// =====================================================

func TestGalleryImageRequiresImage(t *testing.T) {
	svc := NewGalleryImageService(repotest.NewGallery(), attachment.NewResolver(&memStorage{}, nil))

	_, err := svc.Create(context.Background(), &model.GalleryImageRequest{VenueTag: model.VenueRobRoy})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	g, err := svc.Create(context.Background(), &model.GalleryImageRequest{
		VenueTag: model.VenueRobRoy, ImageURL: " https://img.test/patio.jpg ",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://img.test/patio.jpg", g.ImageURL)
}

func TestVideoRequiresTitleAndURL(t *testing.T) {
	svc := NewVideoService(repotest.NewVideos(), attachment.NewResolver(&memStorage{}, nil))

	_, err := svc.Create(context.Background(), &model.VideoRequest{Title: "Set", VenueTag: model.VenueKonfusion})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "videoUrl", appErr.Field)

	v, err := svc.Create(context.Background(), &model.VideoRequest{
		Title: "Set", VideoURL: "https://youtube.com/watch?v=abc", VenueTag: model.VenueKonfusion,
	})
	require.NoError(t, err)
	assert.Nil(t, v.ThumbnailURL)
}

func TestPostPublishedAtLifecycle(t *testing.T) {
	repo := repotest.NewPosts()
	svc := NewPostService(repo, attachment.NewResolver(&memStorage{}, nil)).(*postService)
	first := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }
	ctx := context.Background()

	draft, err := svc.Create(ctx, &model.PostRequest{Title: "Patio season", Content: "Open!", VenueTag: model.VenueRobRoy})
	require.NoError(t, err)
	assert.Nil(t, draft.PublishedAt)

	published, err := svc.Update(ctx, draft.ID, &model.PostRequest{
		Title: "Patio season", Content: "Open!", VenueTag: model.VenueRobRoy, IsPublished: true,
	})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	assert.True(t, first.Equal(*published.PublishedAt))

	svc.now = func() time.Time { return first.Add(48 * time.Hour) }
	edited, err := svc.Update(ctx, draft.ID, &model.PostRequest{
		Title: "Patio season is here", Content: "Open!", VenueTag: model.VenueRobRoy, IsPublished: true,
	})
	require.NoError(t, err)
	assert.True(t, first.Equal(*edited.PublishedAt), "republishing keeps the original date")
}

func TestSpecialOfferingValidatesType(t *testing.T) {
	svc := NewSpecialOfferingService(repotest.NewOfferings(), attachment.NewResolver(&memStorage{}, nil))

	_, err := svc.Create(context.Background(), &model.SpecialOfferingRequest{
		OfferingType: "karaoke", Title: "Karaoke", Description: "Sing", VenueTag: model.VenueRobRoy,
	})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "offeringType", appErr.Field)

	o, err := svc.Create(context.Background(), &model.SpecialOfferingRequest{
		OfferingType: model.OfferingPubCrawl, Title: "Pub Crawl", Description: "Four bars", VenueTag: model.VenueBoth,
		CtaLink: ptr("https://tickets.test/crawl"), IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://tickets.test/crawl", *o.CtaLink)
}

// =====================================================
// HOURS / CONTENT
// =====================================================

func TestOperatingHoursUniquePerVenueAndDay(t *testing.T) {
	repo := repotest.NewHours()
	svc := NewOperatingHourService(repo)
	ctx := context.Background()

	monday, err := svc.Create(ctx, &model.OperatingHourRequest{
		VenueTag: model.VenueRobRoy, DayOfWeek: "monday", OpenTime: ptr("11:00"), CloseTime: ptr("23:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Monday", monday.DayOfWeek)
	assert.Equal(t, 0, monday.DisplayOrder)

	_, err = svc.Create(ctx, &model.OperatingHourRequest{
		VenueTag: model.VenueRobRoy, DayOfWeek: "Monday", IsClosed: true,
	})
	assert.True(t, apperror.Is(err, apperror.KindPersistence))

	_, err = svc.Create(ctx, &model.OperatingHourRequest{VenueTag: model.VenueRobRoy, DayOfWeek: "Tuesday"})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "openTime", appErr.Field)
}

func TestOperatingHoursReplaceWeek(t *testing.T) {
	repo := repotest.NewHours()
	svc := NewOperatingHourService(repo)
	ctx := context.Background()

	_, err := svc.ReplaceWeek(ctx, []*model.OperatingHourRequest{
		{VenueTag: model.VenueKonfusion, DayOfWeek: "Friday", OpenTime: ptr("22:00"), CloseTime: ptr("03:00")},
		{VenueTag: model.VenueKonfusion, DayOfWeek: "Monday", IsClosed: true},
	})
	require.NoError(t, err)

	hours, err := svc.ReplaceWeek(ctx, []*model.OperatingHourRequest{
		{VenueTag: model.VenueKonfusion, DayOfWeek: "Friday", OpenTime: ptr("21:00"), CloseTime: ptr("03:00")},
	})
	require.NoError(t, err)
	require.Len(t, hours, 1)
	assert.Equal(t, "21:00", *hours[0].OpenTime)

	all, err := svc.List(ctx, model.OperatingHourFilter{Venue: model.VenueKonfusion})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Monday", all[0].DayOfWeek)

	_, err = svc.ReplaceWeek(ctx, []*model.OperatingHourRequest{
		{VenueTag: model.VenueKonfusion, DayOfWeek: "Friday", IsClosed: true},
		{VenueTag: model.VenueKonfusion, DayOfWeek: "friday", IsClosed: true},
	})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestVenueContentUpsertsOnVenueAndKey(t *testing.T) {
	repo := repotest.NewVenueContent()
	svc := NewVenueContentService(repo)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, &model.VenueContentRequest{
		VenueTag: model.VenueRobRoy, ContentKey: "hero_title", Content: "Welcome to the Rob Roy",
	})
	require.NoError(t, err)

	second, err := svc.Upsert(ctx, &model.VenueContentRequest{
		VenueTag: model.VenueRobRoy, ContentKey: "hero_title", Content: "Cheers!", Label: ptr("Hero title"),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Cheers!", second.Content)

	_, err = svc.Upsert(ctx, &model.VenueContentRequest{
		VenueTag: model.VenueKonfusion, ContentKey: "hero_title", Content: "Dance",
	})
	require.NoError(t, err)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = svc.Upsert(ctx, &model.VenueContentRequest{VenueTag: model.VenueRobRoy, ContentKey: "Hero Title", Content: "x"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestDeleteMissingRowIsNotFound(t *testing.T) {
	svc := NewDealService(repotest.NewDeals(), attachment.NewResolver(&memStorage{}, nil))
	err := svc.Delete(context.Background(), uuid.New())
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}
