package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/content/repository/repotest"
	"venue-content-backend/internal/domains/content/service"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
	Meta *struct {
		Total     int  `json:"total"`
		DataError bool `json:"dataError"`
	} `json:"meta"`
}

func do(r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func dealRouter(repo *repotest.Table[model.Deal, model.DealFilter]) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDealHandler(service.NewDealService(repo, attachment.NewResolver(nil, nil)), 1<<20)

	r := gin.New()
	r.POST("/admin/deals", h.Create)
	r.PUT("/admin/deals/:id", h.Update)
	r.GET("/venues/:venue/deals", h.PublicList)
	return r
}

func TestDealCreateAcceptsSnakeKeysAndAnswersCamel(t *testing.T) {
	repo := repotest.NewDeals()
	r := dealRouter(repo)

	w, env := do(r, http.MethodPost, "/admin/deals",
		`{"title":"Toonie Tuesday","description":"$2 drinks","day_of_week":"tuesday","venue_tag":"rob_roy","is_active":true}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var deal map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &deal))
	assert.Equal(t, "Tuesday", deal["dayOfWeek"])
	assert.Equal(t, "rob_roy", deal["venueTag"])
	assert.Contains(t, deal, "isActive")
	assert.NotContains(t, deal, "day_of_week")

	w, env = do(r, http.MethodGet, "/venues/rob-roy/deals?day=Tuesday", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.Meta.Total)

	_, env = do(r, http.MethodGet, "/venues/rob_roy/deals?day=Friday", "")
	assert.Equal(t, 0, env.Meta.Total)
}

func TestDealCreateReportsMissingField(t *testing.T) {
	r := dealRouter(repotest.NewDeals())

	w, env := do(r, http.MethodPost, "/admin/deals", `{"title":"Toonie Tuesday","venueTag":"rob_roy"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "description", env.Error.Details["field"])
}

func TestPublicListDegradesOnStoreFailure(t *testing.T) {
	repo := repotest.NewDeals()
	repo.Err = errors.New("connection refused")
	r := dealRouter(repo)

	w, env := do(r, http.MethodGet, "/venues/konfusion/deals", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.True(t, env.Meta.DataError)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestPublicListRejectsUnknownVenue(t *testing.T) {
	r := dealRouter(repotest.NewDeals())
	w, _ := do(r, http.MethodGet, "/venues/both/deals", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPerformerVenueRuleIsUnprocessable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewPerformerHandler(service.NewPerformerService(repotest.NewPerformers(), attachment.NewResolver(nil, nil)), 1<<20)
	r := gin.New()
	r.POST("/admin/performers", h.Create)

	w, env := do(r, http.MethodPost, "/admin/performers",
		`{"name":"DJ Nova","performerType":"band","venueTag":"konfusion","bio":"...","profileImageUrl":"https://img.test/n.jpg"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DOM001", env.Error.Code)
}

func TestUpdateRejectsBadID(t *testing.T) {
	r := dealRouter(repotest.NewDeals())
	w, _ := do(r, http.MethodPut, "/admin/deals/not-a-uuid", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
