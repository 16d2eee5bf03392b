package domain

import "slices"

// Book is a writing project owned by its author.
// The author may grant other users edit access by adding them as collaborators.
// Authorship never transfers; the collaborator set only controls editing.
type Book struct {
	Record
	Title           string   `json:"title"`
	AuthorID        string   `json:"author_id"`
	CollaboratorIDs []string `json:"collaborator_ids,omitempty"`
}

// IsAuthor returns true if the given user owns this book.
func (b *Book) IsAuthor(userID string) bool {
	return b.AuthorID == userID
}

// IsCollaborator returns true if the given user is in the collaborator set.
// The author is not implicitly a collaborator.
func (b *Book) IsCollaborator(userID string) bool {
	return slices.Contains(b.CollaboratorIDs, userID)
}

// AddCollaborator adds a user to the collaborator set.
// Returns false if the user was already a collaborator.
func (b *Book) AddCollaborator(userID string) bool {
	if b.IsCollaborator(userID) {
		return false
	}
	b.CollaboratorIDs = append(b.CollaboratorIDs, userID)
	return true
}

// RemoveCollaborator removes a user from the collaborator set.
// Returns false if the user was not a collaborator.
func (b *Book) RemoveCollaborator(userID string) bool {
	idx := slices.Index(b.CollaboratorIDs, userID)
	if idx < 0 {
		return false
	}
	b.CollaboratorIDs = slices.Delete(b.CollaboratorIDs, idx, idx+1)
	return true
}
