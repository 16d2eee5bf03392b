package search

import (
	"context"
	"testing"
	"time"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *SearchIndex {
	t.Helper()

	idx, err := NewSearchIndex(Options{DataPath: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	return idx
}

func mkBook(id, title string) *domain.Book {
	b := &domain.Book{Title: title, AuthorID: "user-author"}
	b.ID = id
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	return b
}

func mkSection(id, title, bookID string) *domain.Section {
	s := &domain.Section{Title: title, BookID: bookID}
	s.ID = id
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	return s
}

func TestSearch_FindsBookByTitle(t *testing.T) {
	idx := newTestIndex(t)

	require.NoError(t, idx.IndexDocument(BookToSearchDocument(mkBook("book-1", "The Winter Garden"))))
	require.NoError(t, idx.IndexDocument(BookToSearchDocument(mkBook("book-2", "Desert Crossing"))))

	params := DefaultSearchParams()
	params.Query = "winter"

	result, err := idx.Search(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "book-1", result.Hits[0].ID)
	assert.Equal(t, DocTypeBook, result.Hits[0].Type)
}

func TestSearch_FuzzyMatchesTypos(t *testing.T) {
	idx := newTestIndex(t)

	require.NoError(t, idx.IndexDocument(BookToSearchDocument(mkBook("book-1", "Lighthouse"))))

	params := DefaultSearchParams()
	params.Query = "lighthose"

	result, err := idx.Search(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "book-1", result.Hits[0].ID)
}

func TestSearch_TypeFilter(t *testing.T) {
	idx := newTestIndex(t)

	require.NoError(t, idx.IndexDocument(BookToSearchDocument(mkBook("book-1", "Harbor"))))
	require.NoError(t, idx.IndexDocument(SectionToSearchDocument(mkSection("sect-1", "Harbor at Dawn", "book-1"))))

	params := DefaultSearchParams()
	params.Query = "harbor"
	params.Types = []string{"section"}

	result, err := idx.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "sect-1", result.Hits[0].ID)
	assert.Equal(t, "book-1", result.Hits[0].BookID)
}

func TestSearch_BookScope(t *testing.T) {
	idx := newTestIndex(t)

	require.NoError(t, idx.IndexDocument(SectionToSearchDocument(mkSection("sect-1", "Opening Chapter", "book-1"))))
	require.NoError(t, idx.IndexDocument(SectionToSearchDocument(mkSection("sect-2", "Opening Chapter", "book-2"))))

	params := DefaultSearchParams()
	params.Query = "opening"
	params.BookID = "book-1"

	result, err := idx.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "sect-1", result.Hits[0].ID)
}

func TestSearch_DeleteDocument(t *testing.T) {
	idx := newTestIndex(t)

	require.NoError(t, idx.IndexDocument(BookToSearchDocument(mkBook("book-1", "Ephemeral"))))
	require.NoError(t, idx.DeleteDocument("book-1"))

	params := DefaultSearchParams()
	params.Query = "ephemeral"

	result, err := idx.Search(context.Background(), params)
	require.NoError(t, err)
	assert.Empty(t, result.Hits)
}

func TestIndexDocuments_Batch(t *testing.T) {
	idx := newTestIndex(t)

	docs := []*SearchDocument{
		BookToSearchDocument(mkBook("book-1", "One")),
		BookToSearchDocument(mkBook("book-2", "Two")),
		BookToSearchDocument(mkBook("book-3", "Three")),
	}
	require.NoError(t, idx.IndexDocuments(docs))

	count, err := idx.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}

func TestRebuild_EmptiesIndex(t *testing.T) {
	idx := newTestIndex(t)

	require.NoError(t, idx.IndexDocument(BookToSearchDocument(mkBook("book-1", "Gone Soon"))))
	require.NoError(t, idx.Rebuild())

	count, err := idx.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Füchse", "fuchse"},
		{"  CRÈME  ", "creme"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Fold(tt.input))
	}
}
