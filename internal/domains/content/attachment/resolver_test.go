package attachment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-content-backend/internal/shared/apperror"
)

type putCall struct {
	path        string
	data        []byte
	contentType string
}

type memStorage struct {
	puts []putCall
	err  error
}

func (m *memStorage) Put(_ context.Context, path string, data []byte, contentType string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.puts = append(m.puts, putCall{path: path, data: data, contentType: contentType})
	return m.PublicURL(path), nil
}

func (m *memStorage) PublicURL(path string) string {
	return "https://cdn.test/content/" + path
}

type halfResizer struct{}

func (halfResizer) Fit(data []byte, _ string) ([]byte, error) { return data[:len(data)/2], nil }

func newTestResolver(s Storage, rz Resizer) *Resolver {
	r := NewResolver(s, rz)
	r.newName = func() string { return "fixed-id" }
	return r
}

func TestResolveStoresUpload(t *testing.T) {
	store := &memStorage{}
	r := newTestResolver(store, nil)

	url, err := r.Resolve(context.Background(), Input{
		Field:  "profileImageUrl",
		File:   &File{Filename: "Nova.PNG", ContentType: "image/png", Data: []byte("png-bytes")},
		URL:    "https://ignored.example/x.jpg",
		Folder: FolderPerformers,
	})

	require.NoError(t, err)
	require.NotNil(t, url)
	assert.Equal(t, "https://cdn.test/content/performers/fixed-id.png", *url)
	require.Len(t, store.puts, 1, "exactly one durable write")
	assert.Equal(t, "image/png", store.puts[0].contentType)
}

func TestResolveExtensionFromContentType(t *testing.T) {
	store := &memStorage{}
	r := newTestResolver(store, nil)

	url, err := r.Resolve(context.Background(), Input{
		Field:  "imageUrl",
		File:   &File{Filename: "blob", ContentType: "image/jpeg; charset=binary", Data: []byte{1, 2}},
		Folder: FolderSpecialOfferings,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/content/special-offerings/fixed-id.jpg", *url)
}

func TestResolveRejectsNonImage(t *testing.T) {
	store := &memStorage{}
	r := newTestResolver(store, nil)

	in := Input{
		Field:  "posterImageUrl",
		File:   &File{Filename: "menu.pdf", ContentType: "application/pdf", Data: []byte("%PDF")},
		Folder: FolderEvents,
	}
	_, err := r.Resolve(context.Background(), in)

	assert.True(t, apperror.Is(err, apperror.KindInvalidAttachment))
	assert.Empty(t, store.puts)
	assert.True(t, apperror.Is(Validate(in), apperror.KindInvalidAttachment))
}

func TestResolveURLVerbatim(t *testing.T) {
	r := newTestResolver(&memStorage{}, nil)
	prev := "https://old.example/a.jpg"

	url, err := r.Resolve(context.Background(), Input{
		Field:    "imageUrl",
		File:     &File{Filename: "", ContentType: "application/octet-stream"},
		URL:      "  https://new.example/b.jpg ",
		Previous: &prev,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://new.example/b.jpg", *url)
}

func TestResolveKeepsPreviousOnUpdate(t *testing.T) {
	store := &memStorage{}
	r := newTestResolver(store, nil)
	prev := "https://cdn.test/content/gallery/old.jpg"

	url, err := r.Resolve(context.Background(), Input{
		Field:    "imageUrl",
		Folder:   FolderGallery,
		Required: true,
		Previous: &prev,
	})
	require.NoError(t, err)
	assert.Equal(t, prev, *url)
	assert.Empty(t, store.puts)
}

func TestResolveRequiredMissing(t *testing.T) {
	r := newTestResolver(&memStorage{}, nil)

	_, err := r.Resolve(context.Background(), Input{Field: "imageUrl", Required: true})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeMissingRequiredField, appErr.Code)
	assert.Equal(t, "imageUrl", appErr.Field)
}

func TestResolveOptionalMissing(t *testing.T) {
	r := newTestResolver(&memStorage{}, nil)

	url, err := r.Resolve(context.Background(), Input{Field: "imageUrl"})
	require.NoError(t, err)
	assert.Nil(t, url)
}

func TestResolveAppliesResizer(t *testing.T) {
	store := &memStorage{}
	r := newTestResolver(store, halfResizer{})

	_, err := r.Resolve(context.Background(), Input{
		Field:  "imageUrl",
		File:   &File{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte("12345678")},
		Folder: FolderDeals,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("1234"), store.puts[0].data)
}

func TestResolveStorageFailure(t *testing.T) {
	boom := errors.New("minio down")
	r := newTestResolver(&memStorage{err: boom}, nil)

	_, err := r.Resolve(context.Background(), Input{
		Field: "imageUrl",
		File:  &File{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte{1}},
	})
	assert.ErrorIs(t, err, boom)
}
