package server_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athletemind/backend/internal/model"
	"github.com/athletemind/backend/internal/server"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, err := server.New(server.Config{
		Port:          8080,
		DBPath:        "", // in-memory
		AdminUsername: "admin",
		AdminPassword: "test-password",
	}, logger)
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSeededResourcesServed(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/resources", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resources []model.Resource
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resources))
	assert.Len(t, resources, 6)

	rec = doJSON(t, srv.Handler(), http.MethodGet, "/api/resources?category=crisis", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resources))
	assert.Len(t, resources, 2)
	for _, r := range resources {
		assert.Equal(t, "crisis", r.Category)
	}
}

func TestStoryModerationFlow(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	payload := `{
		"firstName": "Jamie",
		"lastName": "Okafor",
		"sport": "Track",
		"injuryType": "Stress Fracture",
		"email": "jamie@example.com",
		"title": "Running Again",
		"content": "It took a full season but I made it back to the start line."
	}`
	rec := doJSON(t, h, http.MethodPost, "/api/stories", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Story
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.False(t, created.Approved)

	// New submission is pending, not public.
	rec = doJSON(t, h, http.MethodGet, "/api/stories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var public []model.Story
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &public))
	assert.Len(t, public, 2) // only the seeded stories

	rec = doJSON(t, h, http.MethodGet, "/api/stories/pending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var pending []model.Story
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, created.ID, pending[0].ID)

	// Approve publishes it.
	rec = doJSON(t, h, http.MethodPost, "/api/stories/3/approve", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/stories", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &public))
	assert.Len(t, public, 3)

	// Reject removes it, even though it is published.
	rec = doJSON(t, h, http.MethodDelete, "/api/stories/3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/stories", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &public))
	assert.Len(t, public, 2)
}

func TestContactRoutes(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/contacts", `{
		"name": "Pat Doyle",
		"email": "pat@example.com",
		"inquiryType": "volunteering",
		"message": "How can I help?"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/contacts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var contacts []model.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contacts))
	assert.Len(t, contacts, 1)
}

func TestLikeRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/resources/1/like", `{"likes": 25}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resource model.Resource
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resource))
	assert.Equal(t, 25, resource.Likes)
}

func TestRequestIDHeaderSet(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/resources", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
