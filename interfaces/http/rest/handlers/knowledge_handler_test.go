package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"knowcore/application/services"
	"knowcore/domain/knowledge"
	"knowcore/infrastructure/persistence/memory"
	"knowcore/pkg/cache"
	"knowcore/pkg/observability"
)

func newKnowledgeRouter() http.Handler {
	svc := services.NewKnowledgeService(
		memory.NewKnowledgeStore(),
		cache.New[*knowledge.Unit](16, time.Minute),
		observability.NewCollector("test"),
		zap.NewNop(),
	)
	h := NewKnowledgeHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/knowledge", h.CreateUnit)
	r.Get("/knowledge", h.ListUnits)
	r.Get("/knowledge/{unitID}", h.GetUnit)
	r.Put("/knowledge/{unitID}", h.UpdateUnit)
	r.Delete("/knowledge/{unitID}", h.DeleteUnit)
	return r
}

func createUnit(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := postJSON(t, router, "/knowledge", `{"author_id":"author-1","content_text":"hello","tags":["intro"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Data.ID)
	return resp.Data.ID
}

func TestCreateUnit(t *testing.T) {
	router := newKnowledgeRouter()
	id := createUnit(t, router)

	rec := getJSON(t, router, "/knowledge/"+id)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"content_text":"hello"`)
	assert.Contains(t, rec.Body.String(), `"moderation_status":"pending"`)
}

func TestCreateUnitValidation(t *testing.T) {
	router := newKnowledgeRouter()

	tests := []struct {
		name string
		body string
	}{
		{"missing author", `{"content_text":"hello"}`},
		{"missing content", `{"author_id":"author-1"}`},
		{"bad json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, router, "/knowledge", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetUnitNotFound(t *testing.T) {
	router := newKnowledgeRouter()

	rec := getJSON(t, router, "/knowledge/no-such-unit")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListUnits(t *testing.T) {
	router := newKnowledgeRouter()

	createUnit(t, router)
	createUnit(t, router)

	rec := getJSON(t, router, "/knowledge")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, strings.Count(rec.Body.String(), `"author_id"`))
}

func TestUpdateUnit(t *testing.T) {
	router := newKnowledgeRouter()
	id := createUnit(t, router)

	req := httptest.NewRequest(http.MethodPut, "/knowledge/"+id, strings.NewReader(`{"content_text":"revised"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"content_text":"revised"`)
	assert.Contains(t, rec.Body.String(), `"version_history"`)
}

func TestDeleteUnit(t *testing.T) {
	router := newKnowledgeRouter()
	id := createUnit(t, router)

	req := httptest.NewRequest(http.MethodDelete, "/knowledge/"+id, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = getJSON(t, router, "/knowledge/"+id)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/knowledge/"+id, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
