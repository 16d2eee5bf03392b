package domain

// Authorization policy for books and their sections.
//
// Two levels of access exist: the author, and the collaborator set the
// author maintains. Collaborators can edit section titles; everything
// structural or administrative is reserved for the author.

// CanManageCollaborators returns true if the user may add or remove
// collaborators. Collaborators cannot grant access to others.
func CanManageCollaborators(user *User, book *Book) bool {
	return book.IsAuthor(user.ID)
}

// CanCreateSection returns true if the user may add sections to the book.
func CanCreateSection(user *User, book *Book) bool {
	return book.IsAuthor(user.ID)
}

// CanEditSection returns true if the user may retitle sections of the book.
func CanEditSection(user *User, book *Book) bool {
	return book.IsAuthor(user.ID) || book.IsCollaborator(user.ID)
}

// CanDeleteSection returns true if the user may delete sections of the book.
// Like book deletion, this is author only.
func CanDeleteSection(user *User, book *Book) bool {
	return book.IsAuthor(user.ID)
}
