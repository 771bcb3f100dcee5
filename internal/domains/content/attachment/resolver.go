package attachment

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"venue-content-backend/internal/shared/apperror"
)

// Folder is the storage prefix an entity's attachments live under.
type Folder string

const (
	FolderPerformers       Folder = "performers"
	FolderEvents           Folder = "events"
	FolderDeals            Folder = "deals"
	FolderGallery          Folder = "gallery"
	FolderVideos           Folder = "videos"
	FolderPosts            Folder = "posts"
	FolderSpecialOfferings Folder = "special-offerings"
)

// File is an uploaded binary as received from a multipart form.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Empty reports whether no usable upload was supplied (file pickers post empty parts).
func (f *File) Empty() bool {
	return f == nil || len(f.Data) == 0
}

// Storage persists attachment bytes and exposes them under a public URL.
type Storage interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
	PublicURL(path string) string
}

// Resizer optionally shrinks oversized images before they are stored.
// Implementations must keep the content type unchanged.
type Resizer interface {
	Fit(data []byte, contentType string) ([]byte, error)
}

// Input describes one image-bearing field of a write request.
type Input struct {
	Field    string // external field name, used in errors
	File     *File
	URL      string
	Folder   Folder
	Required bool
	Previous *string // currently persisted value on update, nil on create
}

// Resolver decides what URL an image field ends up with.
type Resolver struct {
	storage Storage
	resizer Resizer
	newName func() string
}

func NewResolver(storage Storage, resizer Resizer) *Resolver {
	return &Resolver{
		storage: storage,
		resizer: resizer,
		newName: func() string { return uuid.NewString() },
	}
}

// Resolve applies, in order: uploaded file, explicit URL, previous value, required check.
// A returned nil means the field is stored as NULL.
func (r *Resolver) Resolve(ctx context.Context, in Input) (*string, error) {
	// 1. New upload wins
	if !in.File.Empty() {
		url, err := r.store(ctx, in)
		if err != nil {
			return nil, err
		}
		return &url, nil
	}

	// 2. URL typed by the user, kept verbatim
	if u := strings.TrimSpace(in.URL); u != "" {
		return &u, nil
	}

	// 3. Keep what is already stored
	if in.Previous != nil && *in.Previous != "" {
		prev := *in.Previous
		return &prev, nil
	}

	// 4. Nothing at all
	if in.Required {
		return nil, apperror.MissingRequiredField(in.Field)
	}
	return nil, nil
}

// Validate runs the checks that need no I/O, so callers can reject a bad upload
// before touching the store.
func Validate(in Input) error {
	if in.File.Empty() {
		return nil
	}
	if _, ok := imageMediaType(in.File.ContentType); !ok {
		return apperror.InvalidAttachment(in.Field, in.File.ContentType)
	}
	return nil
}

func (r *Resolver) store(ctx context.Context, in Input) (string, error) {
	mediaType, ok := imageMediaType(in.File.ContentType)
	if !ok {
		return "", apperror.InvalidAttachment(in.Field, in.File.ContentType)
	}
	if r.storage == nil {
		return "", apperror.MissingConfiguration("attachment storage")
	}

	data := in.File.Data
	if r.resizer != nil {
		resized, err := r.resizer.Fit(data, mediaType)
		if err != nil {
			log.Warn().Err(err).Str("field", in.Field).Msg("image resize skipped, storing original")
		} else {
			data = resized
		}
	}

	path := fmt.Sprintf("%s/%s.%s", in.Folder, r.newName(), extension(in.File.Filename, mediaType))
	url, err := r.storage.Put(ctx, path, data, mediaType)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", in.Field, err)
	}

	log.Info().
		Str("field", in.Field).
		Str("path", path).
		Int("bytes", len(data)).
		Msg("attachment stored")

	return url, nil
}

func imageMediaType(contentType string) (string, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	mediaType = strings.ToLower(mediaType)
	return mediaType, strings.HasPrefix(mediaType, "image/")
}

var extensionsByType = map[string]string{
	"image/jpeg":    "jpg",
	"image/png":     "png",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
	"image/avif":    "avif",
	"image/heic":    "heic",
}

func extension(filename, mediaType string) string {
	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), "."); ext != "" {
		return ext
	}
	if ext, ok := extensionsByType[mediaType]; ok {
		return ext
	}
	return strings.TrimPrefix(mediaType, "image/")
}
