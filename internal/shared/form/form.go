// Package form reads write payloads that arrive either as multipart forms (admin UI with
// file inputs) or as JSON, with camelCase or snake_case keys.
package form

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"venue-content-backend/internal/shared/apperror"
	"venue-content-backend/pkg/keycodec"
)

// Upload is a file part read fully into memory.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Values holds one request's fields under camelCase keys.
type Values struct {
	fields map[string]any
	files  map[string]*multipart.FileHeader
}

func New(fields map[string]any) *Values {
	v := &Values{fields: map[string]any{}, files: map[string]*multipart.FileHeader{}}
	for k, val := range fields {
		v.fields[keycodec.ToCamel(k)] = val
	}
	return v
}

// multipartOverhead is the room left for field values and part headers beside the file.
const multipartOverhead = 1 << 20

// Parse reads the request body according to its content type.
func Parse(c *gin.Context, maxMemory int64) (*Values, error) {
	mediaType, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type"))

	switch mediaType {
	case "multipart/form-data":
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxMemory+multipartOverhead)
		if err := c.Request.ParseMultipartForm(maxMemory); err != nil {
			return nil, apperror.InvalidField("body", fmt.Sprintf("unreadable multipart form: %v", err))
		}
		v := New(nil)
		for k, vals := range c.Request.MultipartForm.Value {
			if len(vals) > 0 {
				v.fields[keycodec.ToCamel(k)] = vals[0]
			}
		}
		for k, headers := range c.Request.MultipartForm.File {
			if len(headers) > 0 {
				v.files[keycodec.ToCamel(k)] = headers[0]
			}
		}
		return v, nil

	case "application/x-www-form-urlencoded":
		if err := c.Request.ParseForm(); err != nil {
			return nil, apperror.InvalidField("body", "unreadable form")
		}
		fields := make(map[string]any, len(c.Request.PostForm))
		for k := range c.Request.PostForm {
			fields[k] = c.Request.PostForm.Get(k)
		}
		return New(fields), nil

	default:
		var fields map[string]any
		dec := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, maxMemory))
		dec.UseNumber()
		if err := dec.Decode(&fields); err != nil && err != io.EOF {
			return nil, apperror.InvalidField("body", "malformed JSON")
		}
		return New(fields), nil
	}
}

func (v *Values) Has(key string) bool {
	_, ok := v.fields[key]
	return ok
}

// String returns the trimmed field, "" when absent.
func (v *Values) String(key string) string {
	return strings.TrimSpace(cast.ToString(v.fields[key]))
}

// OptString returns nil for absent or blank fields.
func (v *Values) OptString(key string) *string {
	s := v.String(key)
	if s == "" {
		return nil
	}
	return &s
}

// Bool accepts HTML checkbox values ("on") as well as true/false/1/0.
func (v *Values) Bool(key string) bool {
	raw := v.fields[key]
	if s, ok := raw.(string); ok && strings.EqualFold(strings.TrimSpace(s), "on") {
		return true
	}
	return cast.ToBool(raw)
}

func (v *Values) Int(key string) (int, error) {
	if v.String(key) == "" {
		return 0, nil
	}
	n, err := cast.ToIntE(v.fields[key])
	if err != nil {
		return 0, apperror.InvalidField(key, "must be a whole number")
	}
	return n, nil
}

func (v *Values) OptInt(key string) (*int, error) {
	if v.String(key) == "" {
		return nil, nil
	}
	n, err := v.Int(key)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Date parses "2006-01-02" or RFC 3339 values.
func (v *Values) Date(key string) (*time.Time, error) {
	if v.String(key) == "" {
		return nil, nil
	}
	t, err := cast.ToTimeE(v.String(key))
	if err != nil {
		return nil, apperror.InvalidField(key, "must be a date (YYYY-MM-DD)")
	}
	return &t, nil
}

func (v *Values) UUID(key string) (*uuid.UUID, error) {
	s := v.String(key)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, apperror.InvalidField(key, "must be a valid id")
	}
	return &id, nil
}

func (v *Values) Decimal(key string) (*decimal.Decimal, error) {
	s := strings.TrimPrefix(v.String(key), "$")
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, apperror.InvalidField(key, "must be a number")
	}
	return &d, nil
}

// File reads an uploaded part. Empty parts (a file input left blank) yield nil.
func (v *Values) File(key string) (*Upload, error) {
	fh, ok := v.files[key]
	if !ok || fh.Size == 0 {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, apperror.InvalidField(key, "unreadable upload")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperror.InvalidField(key, "unreadable upload")
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// Collect runs a chain of parsers and returns the first failure.
func Collect(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
