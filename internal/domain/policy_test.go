package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy(t *testing.T) {
	author := &User{Record: Record{ID: "user-author"}, Username: "author"}
	collaborator := &User{Record: Record{ID: "user-collab"}, Username: "collab"}
	stranger := &User{Record: Record{ID: "user-stranger"}, Username: "stranger"}

	book := &Book{
		Record:          Record{ID: "book-1"},
		Title:           "Field Notes",
		AuthorID:        author.ID,
		CollaboratorIDs: []string{collaborator.ID},
	}

	tests := []struct {
		name  string
		check func(*User, *Book) bool
		user  *User
		want  bool
	}{
		{"author can manage collaborators", CanManageCollaborators, author, true},
		{"collaborator cannot manage collaborators", CanManageCollaborators, collaborator, false},
		{"stranger cannot manage collaborators", CanManageCollaborators, stranger, false},

		{"author can create section", CanCreateSection, author, true},
		{"collaborator cannot create section", CanCreateSection, collaborator, false},
		{"stranger cannot create section", CanCreateSection, stranger, false},

		{"author can edit section", CanEditSection, author, true},
		{"collaborator can edit section", CanEditSection, collaborator, true},
		{"stranger cannot edit section", CanEditSection, stranger, false},

		{"author can delete section", CanDeleteSection, author, true},
		{"collaborator cannot delete section", CanDeleteSection, collaborator, false},
		{"stranger cannot delete section", CanDeleteSection, stranger, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.user, book))
		})
	}
}

func TestSection_IsRoot(t *testing.T) {
	root := &Section{Title: "Part One", BookID: "book-1"}
	child := &Section{Title: "Chapter 1", BookID: "book-1", ParentID: "sect-root"}

	assert.True(t, root.IsRoot())
	assert.False(t, child.IsRoot())
}
