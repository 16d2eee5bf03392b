package api

import (
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/inkwellapp/inkwell-server/internal/auth"
	"github.com/inkwellapp/inkwell-server/internal/search"
	"github.com/inkwellapp/inkwell-server/internal/service"
	"github.com/inkwellapp/inkwell-server/internal/store"
)

// testEnvelope mirrors the response envelope for decoding in tests.
type testEnvelope[T any] struct {
	V       int    `json:"v"`
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type testServer struct {
	*Server
	api humatest.TestAPI
}

func setupTestServer(t *testing.T, opts ...Options) *testServer {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "inkwell-api-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.New(tmpDir, logger)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	tokens, err := auth.NewTokenService(strings.Repeat("ab", 32), 15*time.Minute)
	require.NoError(t, err)

	index, err := search.NewSearchIndex(search.Options{DataPath: tmpDir, Logger: logger})
	require.NoError(t, err)
	t.Cleanup(func() { index.Close() })

	services := &Services{
		Auth:         service.NewAuthService(st, tokens, logger),
		Book:         service.NewBookService(st, logger),
		Section:      service.NewSectionService(st, logger),
		Collaborator: service.NewCollaboratorService(st, logger),
		Search:       service.NewSearchService(st, index, logger),
	}

	// Generous auth limits so ordinary tests never trip the limiter.
	serverOpts := Options{AuthRatePerMinute: 6000, AuthRateBurst: 1000}
	if len(opts) > 0 {
		serverOpts = opts[0]
	}

	s := NewServer(st, services, serverOpts, logger)
	t.Cleanup(s.Close)

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, s.api),
	}
}

// registerUser creates an account and returns its bearer token and user ID.
func (ts *testServer) registerUser(t *testing.T, username string) (token, userID string) {
	t.Helper()

	resp := ts.api.Post("/api/v1/auth/register", map[string]any{
		"username": username,
		"password": "correct horse battery staple",
	})
	require.Equal(t, http.StatusCreated, resp.Code, "register failed: %s", resp.Body.String())

	login := ts.api.Post("/api/v1/auth/login", map[string]any{
		"username": username,
		"password": "correct horse battery staple",
	})
	require.Equal(t, http.StatusOK, login.Code, "login failed: %s", login.Body.String())

	var envelope testEnvelope[LoginResponse]
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &envelope))
	return envelope.Data.Token, envelope.Data.ID
}

// createBook creates a book via the API and returns its ID.
func (ts *testServer) createBook(t *testing.T, token, title string) string {
	t.Helper()

	resp := ts.api.Post("/api/v1/books",
		"Authorization: Bearer "+token,
		map[string]any{"title": title},
	)
	require.Equal(t, http.StatusCreated, resp.Code, "create book failed: %s", resp.Body.String())

	var envelope testEnvelope[BookResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	return envelope.Data.ID
}

// createSection creates a section via the API and returns its ID.
func (ts *testServer) createSection(t *testing.T, token, bookID, title, parentID string) string {
	t.Helper()

	body := map[string]any{"book_id": bookID, "title": title}
	if parentID != "" {
		body["parent_id"] = parentID
	}
	resp := ts.api.Post("/api/v1/sections",
		"Authorization: Bearer "+token,
		body,
	)
	require.Equal(t, http.StatusCreated, resp.Code, "create section failed: %s", resp.Body.String())

	var envelope testEnvelope[SectionResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	return envelope.Data.ID
}
