package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBook_AddCollaborator(t *testing.T) {
	book := &Book{Title: "Wind Atlas", AuthorID: "user-author"}

	assert.True(t, book.AddCollaborator("user-bob"))
	assert.True(t, book.IsCollaborator("user-bob"))

	// Adding twice is a no-op.
	assert.False(t, book.AddCollaborator("user-bob"))
	assert.Len(t, book.CollaboratorIDs, 1)
}

func TestBook_RemoveCollaborator(t *testing.T) {
	book := &Book{AuthorID: "user-author", CollaboratorIDs: []string{"user-bob", "user-carol"}}

	assert.True(t, book.RemoveCollaborator("user-bob"))
	assert.False(t, book.IsCollaborator("user-bob"))
	assert.True(t, book.IsCollaborator("user-carol"))

	// Removing again is a no-op.
	assert.False(t, book.RemoveCollaborator("user-bob"))
	assert.Len(t, book.CollaboratorIDs, 1)
}

func TestBook_AuthorIsNotImplicitCollaborator(t *testing.T) {
	book := &Book{AuthorID: "user-author"}

	assert.True(t, book.IsAuthor("user-author"))
	assert.False(t, book.IsCollaborator("user-author"))
}

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Alice", "alice"},
		{"  alice  ", "alice"},
		{"ALICE", "alice"},
		{"alice", "alice"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeUsername(tt.input))
	}
}
