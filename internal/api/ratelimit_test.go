package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthEndpointsAreRateLimited(t *testing.T) {
	ts := setupTestServer(t, Options{AuthRatePerMinute: 1, AuthRateBurst: 2})

	attempt := func() int {
		resp := ts.api.Post("/api/v1/auth/login", map[string]any{
			"username": "nobody",
			"password": "whatever password",
		})
		return resp.Code
	}

	// Burst allows the first two attempts through (they fail auth, not
	// rate limiting), the third is throttled.
	require.Equal(t, http.StatusBadRequest, attempt())
	require.Equal(t, http.StatusBadRequest, attempt())
	assert.Equal(t, http.StatusTooManyRequests, attempt())

	// Non-auth routes are unaffected.
	resp := ts.api.Get("/api/v1/books")
	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
}
