package service_test

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellapp/inkwell-server/internal/search"
	"github.com/inkwellapp/inkwell-server/internal/service"
)

func newTestSearchService(t *testing.T, env *testEnv) *service.SearchService {
	t.Helper()

	dir, err := os.MkdirTemp("", "inkwell-search-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	index, err := search.NewSearchIndex(search.Options{DataPath: dir, Logger: logger})
	require.NoError(t, err)
	t.Cleanup(func() { index.Close() })

	return service.NewSearchService(env.store, index, logger)
}

func TestSearchService_Search(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestSearchService(t, env)

	author := env.register(t, "seeker")
	book := env.createBook(t, author, "The Lighthouse Keeper")
	env.createSection(t, author, book.ID, "Storm Warning", "")

	t.Run("finds book by title", func(t *testing.T) {
		result, err := svc.Search(env.ctx, service.SearchRequest{Query: "lighthouse"})
		require.NoError(t, err)
		require.NotEmpty(t, result.Hits)
		assert.Equal(t, book.ID, result.Hits[0].ID)
	})

	t.Run("finds section by title", func(t *testing.T) {
		result, err := svc.Search(env.ctx, service.SearchRequest{Query: "storm"})
		require.NoError(t, err)
		require.NotEmpty(t, result.Hits)
		assert.Equal(t, search.DocTypeSection, result.Hits[0].Type)
	})

	t.Run("type filter narrows results", func(t *testing.T) {
		result, err := svc.Search(env.ctx, service.SearchRequest{
			Query: "keeper",
			Types: []string{"section"},
		})
		require.NoError(t, err)
		assert.Empty(t, result.Hits)

		result, err = svc.Search(env.ctx, service.SearchRequest{
			Query: "keeper",
			Types: []string{"book"},
		})
		require.NoError(t, err)
		require.NotEmpty(t, result.Hits)
		assert.Equal(t, search.DocTypeBook, result.Hits[0].Type)
	})

	t.Run("empty query rejected", func(t *testing.T) {
		_, err := svc.Search(env.ctx, service.SearchRequest{})
		require.Error(t, err)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := svc.Search(env.ctx, service.SearchRequest{Query: "x", Types: []string{"user"}})
		require.Error(t, err)
	})
}

func TestSearchService_ReindexAll(t *testing.T) {
	env := newTestEnv(t)

	// Create content before the search service exists, so nothing is
	// indexed incrementally.
	author := env.register(t, "rebuilder")
	book := env.createBook(t, author, "Recovered Volume")
	env.createSection(t, author, book.ID, "Recovered Chapter", "")

	svc := newTestSearchService(t, env)

	result, err := svc.Search(env.ctx, service.SearchRequest{Query: "recovered"})
	require.NoError(t, err)
	assert.Empty(t, result.Hits)

	require.NoError(t, svc.ReindexAll(env.ctx))

	result, err = svc.Search(env.ctx, service.SearchRequest{Query: "recovered"})
	require.NoError(t, err)
	assert.Len(t, result.Hits, 2)
}

func TestSearchService_DeleteRemovesFromIndex(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestSearchService(t, env)

	author := env.register(t, "pruner")
	book := env.createBook(t, author, "Ephemeral Draft")
	section := env.createSection(t, author, book.ID, "Ephemeral Notes", "")

	result, err := svc.Search(env.ctx, service.SearchRequest{Query: "ephemeral"})
	require.NoError(t, err)
	assert.Len(t, result.Hits, 2)

	require.NoError(t, env.sect.DeleteSection(env.ctx, author, section.ID))

	result, err = svc.Search(env.ctx, service.SearchRequest{Query: "ephemeral"})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, book.ID, result.Hits[0].ID)
}
