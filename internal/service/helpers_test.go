package service_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/inkwellapp/inkwell-server/internal/auth"
	"github.com/inkwellapp/inkwell-server/internal/domain"
	"github.com/inkwellapp/inkwell-server/internal/service"
	"github.com/inkwellapp/inkwell-server/internal/store"
)

type testEnv struct {
	store  *store.Store
	auth   *service.AuthService
	books  *service.BookService
	sect   *service.SectionService
	collab *service.CollaboratorService
	ctx    context.Context
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir, err := os.MkdirTemp("", "inkwell-service-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := store.New(dir, logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	tokens, err := auth.NewTokenService(strings.Repeat("ab", 32), 15*time.Minute)
	require.NoError(t, err)

	return &testEnv{
		store:  s,
		auth:   service.NewAuthService(s, tokens, logger),
		books:  service.NewBookService(s, logger),
		sect:   service.NewSectionService(s, logger),
		collab: service.NewCollaboratorService(s, logger),
		ctx:    context.Background(),
	}
}

func (e *testEnv) register(t *testing.T, username string) *domain.User {
	t.Helper()
	user, err := e.auth.Register(e.ctx, service.RegisterRequest{
		Username: username,
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createBook(t *testing.T, author *domain.User, title string) *domain.Book {
	t.Helper()
	book, err := e.books.CreateBook(e.ctx, author, service.CreateBookRequest{Title: title})
	require.NoError(t, err)
	return book
}

func (e *testEnv) createSection(t *testing.T, author *domain.User, bookID, title, parentID string) *domain.Section {
	t.Helper()
	section, err := e.sect.CreateSection(e.ctx, author, service.CreateSectionRequest{
		BookID:   bookID,
		Title:    title,
		ParentID: parentID,
	})
	require.NoError(t, err)
	return section
}
