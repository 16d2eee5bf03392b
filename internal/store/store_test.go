package store_test

import (
	"context"
	"testing"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	"github.com/inkwellapp/inkwell-server/internal/store"
	"github.com/stretchr/testify/require"
)

func TestUsers_UsernameUniqueCaseInsensitive(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	alice := &domain.User{Username: "Alice"}
	alice.ID = "user-1"
	require.NoError(t, s.Users.Create(ctx, alice.ID, alice))

	// Same username, different case
	impostor := &domain.User{Username: "ALICE"}
	impostor.ID = "user-2"
	err := s.Users.Create(ctx, impostor.ID, impostor)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// Lookup works regardless of case
	found, err := s.Users.GetByIndex(ctx, "username", "alice")
	require.NoError(t, err)
	require.Equal(t, "user-1", found.ID)

	found, err = s.Users.GetByIndex(ctx, "username", "  ALICE ")
	require.NoError(t, err)
	require.Equal(t, "user-1", found.ID)
}

func TestBooks_AuthorIndex(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for i, title := range []string{"First", "Second"} {
		book := &domain.Book{Title: title, AuthorID: "user-a"}
		book.ID = []string{"book-1", "book-2"}[i]
		require.NoError(t, s.Books.Create(ctx, book.ID, book))
	}

	other := &domain.Book{Title: "Third", AuthorID: "user-b"}
	other.ID = "book-3"
	require.NoError(t, s.Books.Create(ctx, other.ID, other))

	mine, err := s.Books.ListByIndex(ctx, "author", "user-a")
	require.NoError(t, err)
	require.Len(t, mine, 2)

	theirs, err := s.Books.ListByIndex(ctx, "author", "user-b")
	require.NoError(t, err)
	require.Len(t, theirs, 1)
}

func TestSections_BookAndParentIndexes(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	root := &domain.Section{Title: "Part One", BookID: "book-1"}
	root.ID = "sect-root"
	require.NoError(t, s.Sections.Create(ctx, root.ID, root))

	child := &domain.Section{Title: "Chapter 1", BookID: "book-1", ParentID: root.ID}
	child.ID = "sect-child"
	require.NoError(t, s.Sections.Create(ctx, child.ID, child))

	inBook, err := s.Sections.ListByIndex(ctx, "book", "book-1")
	require.NoError(t, err)
	require.Len(t, inBook, 2)

	children, err := s.Sections.ListByIndex(ctx, "parent", root.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	require.Equal(t, child.ID, children[0].ID)

	// Roots have no parent index entry
	orphans, err := s.Sections.ListByIndex(ctx, "parent", "")
	require.NoError(t, err)
	require.Empty(t, orphans)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	tmpDir := t.TempDir()

	s, err := store.New(tmpDir, nil)
	require.NoError(t, err)

	ctx := context.Background()
	user := &domain.User{Username: "persist"}
	user.ID = "user-1"
	require.NoError(t, s.Users.Create(ctx, user.ID, user))
	require.NoError(t, s.Close())

	s, err = store.New(tmpDir, nil)
	require.NoError(t, err)
	defer s.Close()

	found, err := s.Users.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, "persist", found.Username)
}
