package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"designcollective.dev/internal/config"
	"designcollective.dev/internal/models"
	"designcollective.dev/internal/services"
	"designcollective.dev/internal/view"
)

func newRouter() http.Handler {
	cfg := &config.Config{
		Content:     models.DefaultContent(),
		CORSOrigins: []string{"*"},
	}
	return SetupRoutes(cfg, zap.NewNop())
}

func get(t *testing.T, h http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	rec := get(t, newRouter(), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	_, hidden := doc.Find("[data-menu-panel]").Attr("hidden")
	assert.True(t, hidden)
	assert.Equal(t, 6, doc.Find("a[data-project]").Length())
}

func TestIndexMenuQuery(t *testing.T) {
	h := newRouter()

	doc, err := goquery.NewDocumentFromReader(get(t, h, "/?menu=open").Body)
	require.NoError(t, err)
	_, hidden := doc.Find("[data-menu-panel]").Attr("hidden")
	assert.False(t, hidden)
	assert.Equal(t, "?menu=closed", doc.Find("[data-menu-toggle]").AttrOr("href", ""))

	doc, err = goquery.NewDocumentFromReader(get(t, h, "/?menu=closed").Body)
	require.NoError(t, err)
	_, hidden = doc.Find("[data-menu-panel]").Attr("hidden")
	assert.True(t, hidden)
}

func TestIndexUsesClock(t *testing.T) {
	ps := services.NewProjectService(models.DefaultContent())
	clock := view.Fixed(time.Date(2040, 2, 2, 0, 0, 0, 0, time.UTC))
	h := NewPageHandler(ps, clock, zap.NewNop())

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), "© 2040 Design Collective. All rights reserved.")
}

func TestHealth(t *testing.T) {
	rec := get(t, newRouter(), "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListProjects(t *testing.T) {
	rec := get(t, newRouter(), "/api/projects")
	require.Equal(t, http.StatusOK, rec.Code)

	var cols []models.Collection
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cols))
	require.Len(t, cols, 2)
	assert.Equal(t, "team", cols[0].Key)
	assert.Len(t, cols[1].Projects, 3)
}

func TestListSections(t *testing.T) {
	rec := get(t, newRouter(), "/api/sections")
	require.Equal(t, http.StatusOK, rec.Code)

	var sections []models.NavSection
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sections))
	assert.Equal(t, []models.NavSection{
		{ID: "work", Label: "Work"},
		{ID: "about", Label: "About"},
		{ID: "contact", Label: "Contact"},
	}, sections)
}

func TestGetCollectionAndProject(t *testing.T) {
	h := newRouter()

	rec := get(t, h, "/api/projects/individual")
	require.Equal(t, http.StatusOK, rec.Code)
	var col models.Collection
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&col))
	assert.Equal(t, "Individual projects", col.Heading)

	rec = get(t, h, "/api/projects/team/onboarding-journey")
	require.Equal(t, http.StatusOK, rec.Code)
	var p models.Project
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	assert.Equal(t, "Onboarding Journey", p.Title)
	assert.Equal(t, []string{"UX Writing", "Guidance", "Motion"}, p.Tags)
}

func TestNotFound(t *testing.T) {
	h := newRouter()

	rec := get(t, h, "/api/projects/archive")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Collection not found"}`, rec.Body.String())

	rec = get(t, h, "/api/projects/team/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, rec.Body.String())
}

func TestCORS(t *testing.T) {
	rec := get(t, newRouter(), "/api/projects", "Origin", "https://elsewhere.example")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatic(t *testing.T) {
	h := newRouter()
	for _, path := range []string{"/static/js/motion.js", "/static/js/menu.js", "/static/css/site.css"} {
		rec := get(t, h, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, strings.TrimSpace(rec.Body.String()), path)
	}
	assert.Equal(t, http.StatusNotFound, get(t, h, "/static/js/nope.js").Code)
}

func TestRespondJSONLogsEncodeErrors(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	rec := httptest.NewRecorder()

	respondJSON(rec, zap.New(core), http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("error encoding JSON").Len())
}
