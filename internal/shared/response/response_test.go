package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-content-backend/internal/shared/apperror"
)

func render(err error) (*httptest.ResponseRecorder, Response) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	FromError(c, err)

	var body Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestFromErrorStatusByKind(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperror.MissingRequiredField("title"), http.StatusBadRequest},
		{apperror.InvalidAttachment("imageUrl", "text/plain"), http.StatusBadRequest},
		{apperror.DomainRule("performerType", "DJs only"), http.StatusUnprocessableEntity},
		{apperror.NotFound("deal"), http.StatusNotFound},
		{apperror.SyncInProgress(), http.StatusConflict},
		{apperror.EmptyFeed(), http.StatusBadGateway},
		{apperror.MissingConfiguration("instagram access token"), http.StatusServiceUnavailable},
		{apperror.Persistence("boom", errors.New("boom")), http.StatusInternalServerError},
		{apperror.Persistence("duplicate key", &pgconn.PgError{Code: "23505"}), http.StatusConflict},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w, body := render(tc.err)
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.False(t, body.Success)
	}
}

func TestFromErrorCarriesField(t *testing.T) {
	_, body := render(apperror.MissingRequiredField("bio"))

	require.NotNil(t, body.Error)
	assert.Equal(t, apperror.CodeMissingRequiredField, body.Error.Code)
	assert.Equal(t, "bio is required", body.Error.Message)
	assert.Equal(t, map[string]interface{}{"field": "bio"}, body.Error.Details)
}

func TestDegradedList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	DegradedList(c, errors.New("store unreachable"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"success":true,"data":[],"meta":{"total":0,"dataError":true,"warning":"content is temporarily unavailable"}}`,
		w.Body.String())
}
