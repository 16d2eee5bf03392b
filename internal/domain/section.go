package domain

// Section is a node in a book's table of contents.
// Sections form a forest: a section with an empty ParentID is a root,
// every other section points at a parent within the same book.
type Section struct {
	Record
	Title    string `json:"title"`
	BookID   string `json:"book_id"`
	ParentID string `json:"parent_id,omitempty"`
}

// IsRoot returns true if the section has no parent.
func (s *Section) IsRoot() bool {
	return s.ParentID == ""
}
