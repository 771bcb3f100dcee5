package handler

import (
	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/shared/form"
)

// Binders turn loosely typed form values into typed write requests. Presence checks
// stay in each request's Validate; these only reject values of the wrong shape.

func upload(v *form.Values, key string, dst **attachment.File) func() error {
	return func() error {
		up, err := v.File(key)
		if err != nil || up == nil {
			return err
		}
		*dst = &attachment.File{Filename: up.Filename, ContentType: up.ContentType, Data: up.Data}
		return nil
	}
}

func bindPerformer(v *form.Values) (*model.PerformerRequest, error) {
	req := &model.PerformerRequest{
		Name:            v.String("name"),
		PerformerType:   model.PerformerType(v.String("performerType")),
		Bio:             v.String("bio"),
		Genre:           v.OptString("genre"),
		ProfileImageURL: v.String("profileImageUrl"),
		InstagramURL:    v.OptString("instagramUrl"),
		FacebookURL:     v.OptString("facebookUrl"),
		SpotifyURL:      v.OptString("spotifyUrl"),
		SoundcloudURL:   v.OptString("soundcloudUrl"),
		WebsiteURL:      v.OptString("websiteUrl"),
		VenueTag:        model.VenueTag(v.String("venueTag")),
		IsFeatured:      v.Bool("isFeatured"),
		IsAlumni:        v.Bool("isAlumni"),
	}
	return req, upload(v, "profileImage", &req.ProfileImage)()
}

func bindEvent(v *form.Values) (*model.EventRequest, error) {
	req := &model.EventRequest{
		VenueTag:       model.VenueTag(v.String("venueTag")),
		Title:          v.String("title"),
		Description:    v.OptString("description"),
		StartTime:      v.OptString("startTime"),
		EndTime:        v.OptString("endTime"),
		EventType:      v.OptString("eventType"),
		PosterImageURL: v.String("posterImageUrl"),
		Status:         model.EventStatus(v.String("status")),
		RecurringDay:   v.OptString("recurringDay"),
	}
	err := form.Collect(
		func() (err error) { req.EventDate, err = v.Date("eventDate"); return },
		func() (err error) { req.PerformerID, err = v.UUID("performerId"); return },
		func() (err error) { req.CoverCharge, err = v.Decimal("coverCharge"); return },
		upload(v, "posterImage", &req.PosterImage),
	)
	return req, err
}

func bindDeal(v *form.Values) (*model.DealRequest, error) {
	req := &model.DealRequest{
		VenueTag:    model.VenueTag(v.String("venueTag")),
		Title:       v.String("title"),
		Description: v.String("description"),
		DayOfWeek:   v.OptString("dayOfWeek"),
		StartTime:   v.OptString("startTime"),
		EndTime:     v.OptString("endTime"),
		IsActive:    v.Bool("isActive"),
		ImageURL:    v.String("imageUrl"),
	}
	err := form.Collect(
		func() (err error) { req.DisplayOrder, err = v.Int("displayOrder"); return },
		upload(v, "image", &req.Image),
	)
	return req, err
}

func bindGalleryImage(v *form.Values) (*model.GalleryImageRequest, error) {
	req := &model.GalleryImageRequest{
		VenueTag:   model.VenueTag(v.String("venueTag")),
		ImageURL:   v.String("imageUrl"),
		Caption:    v.OptString("caption"),
		Category:   v.OptString("category"),
		IsFeatured: v.Bool("isFeatured"),
	}
	err := form.Collect(
		func() (err error) { req.EventID, err = v.UUID("eventId"); return },
		func() (err error) { req.DisplayOrder, err = v.Int("displayOrder"); return },
		upload(v, "image", &req.Image),
	)
	return req, err
}

func bindVideo(v *form.Values) (*model.VideoRequest, error) {
	req := &model.VideoRequest{
		VenueTag:     model.VenueTag(v.String("venueTag")),
		Title:        v.String("title"),
		VideoURL:     v.String("videoUrl"),
		ThumbnailURL: v.String("thumbnailUrl"),
		IsFeatured:   v.Bool("isFeatured"),
	}
	err := form.Collect(
		func() (err error) { req.PerformerID, err = v.UUID("performerId"); return },
		func() (err error) { req.EventID, err = v.UUID("eventId"); return },
		func() (err error) { req.DisplayOrder, err = v.Int("displayOrder"); return },
		upload(v, "thumbnail", &req.Thumbnail),
	)
	return req, err
}

func bindPost(v *form.Values) (*model.PostRequest, error) {
	req := &model.PostRequest{
		VenueTag:    model.VenueTag(v.String("venueTag")),
		Title:       v.String("title"),
		Content:     v.String("content"),
		Excerpt:     v.OptString("excerpt"),
		ImageURL:    v.String("imageUrl"),
		IsPublished: v.Bool("isPublished"),
	}
	return req, upload(v, "image", &req.Image)()
}

func bindOperatingHour(v *form.Values) (*model.OperatingHourRequest, error) {
	req := &model.OperatingHourRequest{
		VenueTag:  model.VenueTag(v.String("venueTag")),
		DayOfWeek: v.String("dayOfWeek"),
		OpenTime:  v.OptString("openTime"),
		CloseTime: v.OptString("closeTime"),
		IsClosed:  v.Bool("isClosed"),
	}
	var err error
	req.DisplayOrder, err = v.OptInt("displayOrder")
	return req, err
}

func bindSpecialOffering(v *form.Values) (*model.SpecialOfferingRequest, error) {
	req := &model.SpecialOfferingRequest{
		VenueTag:     model.VenueTag(v.String("venueTag")),
		OfferingType: model.OfferingType(v.String("offeringType")),
		Title:        v.String("title"),
		Description:  v.String("description"),
		ImageURL:     v.String("imageUrl"),
		CtaText:      v.OptString("ctaText"),
		CtaLink:      v.OptString("ctaLink"),
		IsActive:     v.Bool("isActive"),
	}
	err := form.Collect(
		func() (err error) { req.DisplayOrder, err = v.Int("displayOrder"); return },
		upload(v, "image", &req.Image),
	)
	return req, err
}

func bindVenueContent(v *form.Values) *model.VenueContentRequest {
	return &model.VenueContentRequest{
		VenueTag:   model.VenueTag(v.String("venueTag")),
		ContentKey: v.String("contentKey"),
		Content:    v.String("content"),
		Label:      v.OptString("label"),
	}
}
