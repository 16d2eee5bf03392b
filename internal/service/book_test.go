package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	domainerrors "github.com/inkwellapp/inkwell-server/internal/errors"
	"github.com/inkwellapp/inkwell-server/internal/service"
	"github.com/inkwellapp/inkwell-server/internal/store"
)

func TestBookService_CreateBook(t *testing.T) {
	env := newTestEnv(t)
	author := env.register(t, "writer")

	t.Run("creates book with caller as author", func(t *testing.T) {
		book, err := env.books.CreateBook(env.ctx, author, service.CreateBookRequest{Title: "Tidelands"})
		require.NoError(t, err)
		assert.Equal(t, "Tidelands", book.Title)
		assert.Equal(t, author.ID, book.AuthorID)
		assert.Empty(t, book.CollaboratorIDs)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := env.books.CreateBook(env.ctx, author, service.CreateBookRequest{Title: "   "})
		require.Error(t, err)
		var derr *domainerrors.Error
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, domainerrors.CodeValidation, derr.Code)
	})
}

func TestBookService_ListBooks(t *testing.T) {
	env := newTestEnv(t)
	alpha := env.register(t, "alpha")
	beta := env.register(t, "beta")

	env.createBook(t, alpha, "Cartography")
	env.createBook(t, alpha, "Azimuth")
	env.createBook(t, beta, "Borderlines")

	t.Run("default order is newest first", func(t *testing.T) {
		page, err := env.books.ListBooks(env.ctx, service.ListBooksParams{})
		require.NoError(t, err)
		require.Equal(t, 3, page.Count)
		titles := pageTitles(page)
		assert.Equal(t, []string{"Borderlines", "Azimuth", "Cartography"}, titles)
	})

	t.Run("sort by title ascending", func(t *testing.T) {
		page, err := env.books.ListBooks(env.ctx, service.ListBooksParams{SortBy: "title"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Azimuth", "Borderlines", "Cartography"}, pageTitles(page))
	})

	t.Run("unknown sort keys ignored", func(t *testing.T) {
		page, err := env.books.ListBooks(env.ctx, service.ListBooksParams{SortBy: "password_hash,title"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Azimuth", "Borderlines", "Cartography"}, pageTitles(page))
	})

	t.Run("filter by author", func(t *testing.T) {
		page, err := env.books.ListBooks(env.ctx, service.ListBooksParams{AuthorID: alpha.ID, SortBy: "title"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Azimuth", "Cartography"}, pageTitles(page))
	})

	t.Run("pagination exposes navigation", func(t *testing.T) {
		page, err := env.books.ListBooks(env.ctx, service.ListBooksParams{
			SortBy: "title",
			Page:   store.PageParams{Page: 1, PageSize: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, page.Count)
		assert.Len(t, page.Results, 2)
		require.NotNil(t, page.Next)
		assert.Equal(t, 2, *page.Next)
		assert.Nil(t, page.Previous)
	})
}

func TestBookService_GetBook(t *testing.T) {
	env := newTestEnv(t)
	author := env.register(t, "getter")
	book := env.createBook(t, author, "Single Copy")

	got, err := env.books.GetBook(env.ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book.ID, got.ID)

	_, err = env.books.GetBook(env.ctx, "book-missing")
	require.Error(t, err)
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeNotFound, derr.Code)
}

func pageTitles(page *store.Page[*domain.Book]) []string {
	out := make([]string, len(page.Results))
	for i, b := range page.Results {
		out[i] = b.Title
	}
	return out
}
