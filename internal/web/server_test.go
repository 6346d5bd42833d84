package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/study-room/studybot/internal/config"
	"github.com/study-room/studybot/internal/domain"
)

type fakeCatalog struct {
	files      []domain.File
	gotFilter  [4]string
	fileCount  int64
	branches   []domain.BranchCount
	migrated   int64
	migrations int
}

func (f *fakeCatalog) ListFiltered(_ context.Context, branch, regulation, fileType, subject string) ([]domain.File, error) {
	f.gotFilter = [4]string{branch, regulation, fileType, subject}
	return f.files, nil
}

func (f *fakeCatalog) CountFiles(context.Context) (int64, error) {
	return f.fileCount, nil
}

func (f *fakeCatalog) BranchCounts(context.Context) ([]domain.BranchCount, error) {
	return f.branches, nil
}

func (f *fakeCatalog) MigrateLegacyBranches(context.Context) (int64, error) {
	f.migrations++
	return f.migrated, nil
}

type fakeUsers struct {
	count int64
}

func (f *fakeUsers) Count(context.Context) (int64, error) {
	return f.count, nil
}

func newTestServer(catalog *fakeCatalog, users *fakeUsers) *Server {
	cfg := &config.Config{
		AdminIDs: []int64{42},
		Port:     0,
	}
	return NewServer(cfg, catalog, users)
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec, payload
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&fakeCatalog{}, &fakeUsers{})

	rec, payload := doJSON(t, srv.Handler(), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", payload["status"])
	assert.NotEmpty(t, payload["uptime"])

	_, err := time.Parse(time.RFC3339, payload["timestamp"].(string))
	assert.NoError(t, err)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestListFilesReturnsBareArray(t *testing.T) {
	catalog := &fakeCatalog{files: []domain.File{
		{FileName: "ds.pdf", Subject: "Data Structures", Branches: []string{"CSE"}},
	}}
	srv := newTestServer(catalog, &fakeUsers{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/files?branch=CSE&regulation=R18&type=notes&subject=data", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, [4]string{"CSE", "R18", "notes", "data"}, catalog.gotFilter)

	// The body is the record array itself, not a wrapper object.
	var files []domain.File
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &files))
	require.Len(t, files, 1)
	assert.Equal(t, "ds.pdf", files[0].FileName)
}

func TestListFilesEmptyResultIsAnArray(t *testing.T) {
	srv := newTestServer(&fakeCatalog{}, &fakeUsers{})

	req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var files []any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &files))
	assert.NotNil(t, files)
	assert.Empty(t, files)
}

func TestStats(t *testing.T) {
	catalog := &fakeCatalog{
		fileCount: 12,
		branches:  []domain.BranchCount{{Branch: "CSE", Count: 8}, {Branch: "ECE", Count: 4}},
	}
	srv := newTestServer(catalog, &fakeUsers{count: 99})

	rec, payload := doJSON(t, srv.Handler(), http.MethodGet, "/api/stats", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 12, payload["totalFiles"])
	assert.EqualValues(t, 99, payload["totalUsers"])

	branches, ok := payload["branches"].([]any)
	require.True(t, ok)
	require.Len(t, branches, 2)
	first, ok := branches[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "CSE", first["branchCode"])
	assert.EqualValues(t, 8, first["count"])
}

func TestMigrateBranchesRequiresAdmin(t *testing.T) {
	catalog := &fakeCatalog{migrated: 5}
	srv := newTestServer(catalog, &fakeUsers{})

	rec, payload := doJSON(t, srv.Handler(), http.MethodPost,
		"/api/migrate-branches", `{"userId": 7}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "admin access required", payload["error"])
	assert.Zero(t, catalog.migrations)
}

func TestMigrateBranchesAsAdmin(t *testing.T) {
	catalog := &fakeCatalog{migrated: 5}
	srv := newTestServer(catalog, &fakeUsers{})

	rec, payload := doJSON(t, srv.Handler(), http.MethodPost,
		"/api/migrate-branches", `{"userId": 42}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "migration completed", payload["message"])
	assert.EqualValues(t, 5, payload["modifiedCount"])
	assert.Equal(t, 1, catalog.migrations)
}

func TestMigrateBranchesRejectsBadBody(t *testing.T) {
	srv := newTestServer(&fakeCatalog{}, &fakeUsers{})

	rec, _ := doJSON(t, srv.Handler(), http.MethodPost,
		"/api/migrate-branches", `{"userId": "not a number"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
