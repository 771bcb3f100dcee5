package form

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-content-backend/internal/shared/apperror"
)

func contextFor(req *http.Request) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestParseJSONNormalisesSnakeKeys(t *testing.T) {
	body := `{"title":"Toonie Tuesday","day_of_week":"Tuesday","isActive":true,"display_order":3,"cover_charge":"$12.50"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	v, err := Parse(contextFor(req), 1<<20)
	require.NoError(t, err)

	assert.Equal(t, "Toonie Tuesday", v.String("title"))
	assert.Equal(t, "Tuesday", v.String("dayOfWeek"))
	assert.True(t, v.Bool("isActive"))
	n, err := v.Int("displayOrder")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	d, err := v.Decimal("coverCharge")
	require.NoError(t, err)
	assert.Equal(t, "12.5", d.String())
	assert.False(t, v.Has("day_of_week"))
}

func TestParseMultipartWithFile(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", " DJ Nova "))
	require.NoError(t, mw.WriteField("is_featured", "on"))
	require.NoError(t, mw.WriteField("genre", "  "))

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="profileImage"; filename="nova.png"`)
	h.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, _ = part.Write([]byte{0x89, 'P', 'N', 'G'})

	h = make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="posterImage"; filename=""`)
	h.Set("Content-Type", "application/octet-stream")
	_, err = mw.CreatePart(h)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	v, err := Parse(contextFor(req), 1<<20)
	require.NoError(t, err)

	assert.Equal(t, "DJ Nova", v.String("name"))
	assert.True(t, v.Bool("isFeatured"))
	assert.Nil(t, v.OptString("genre"))

	up, err := v.File("profileImage")
	require.NoError(t, err)
	require.NotNil(t, up)
	assert.Equal(t, "nova.png", up.Filename)
	assert.Equal(t, "image/png", up.ContentType)
	assert.Len(t, up.Data, 4)

	empty, err := v.File("posterImage")
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestTypedAccessorsReportField(t *testing.T) {
	v := New(map[string]any{"event_date": "not-a-date", "performerId": "nope", "displayOrder": "x"})

	_, err := v.Date("eventDate")
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "eventDate", appErr.Field)

	_, err = v.UUID("performerId")
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = v.Int("displayOrder")
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	d, err := v.Date("missing")
	assert.NoError(t, err)
	assert.Nil(t, d)
}

func TestDateFormats(t *testing.T) {
	v := New(map[string]any{"a": "2026-11-07", "b": "2026-11-07T20:00:00Z"})

	a, err := v.Date("a")
	require.NoError(t, err)
	assert.Equal(t, 7, a.Day())

	b, err := v.Date("b")
	require.NoError(t, err)
	assert.Equal(t, 20, b.Hour())
}

func TestMalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")

	_, err := Parse(contextFor(req), 1<<20)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestParseMultipartRejectsOversizedBody(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "DJ Nova"))
	part, err := mw.CreateFormFile("profileImage", "nova.png")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{0xAB}, 1024+multipartOverhead))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	_, err = Parse(contextFor(req), 512)

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}
