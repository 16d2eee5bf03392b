// Package search provides full-text search functionality using Bleve.
// It enables search across books and sections with fuzzy matching and
// type filtering.
package search

import (
	"github.com/inkwellapp/inkwell-server/internal/domain"
)

// DocType represents the type of document in the unified index.
type DocType string

// Document types for the search index.
const (
	DocTypeBook    DocType = "book"
	DocTypeSection DocType = "section"
)

// SearchDocument is the unified document structure for the Bleve index.
// All searchable entities are indexed as SearchDocuments with type discrimination.
type SearchDocument struct {
	// Identity
	ID   string  `json:"id"`   // Original entity ID (book-xxx, sect-xxx)
	Type DocType `json:"type"` // Discriminator for result grouping

	// Primary searchable text: the book or section title.
	Name string `json:"name"`

	// Section-specific: the book the section belongs to, for scoping
	// search to one project. Empty for book documents.
	BookID string `json:"book_id,omitempty"`

	// Timestamps for sorting
	CreatedAt int64 `json:"created_at"` // Unix millis
	UpdatedAt int64 `json:"updated_at"` // Unix millis
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *SearchDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":         d.ID,
		"type":       string(d.Type),
		"name":       d.Name,
		"created_at": d.CreatedAt,
		"updated_at": d.UpdatedAt,
	}

	if d.BookID != "" {
		m["book_id"] = d.BookID
	}

	return m
}

// BookToSearchDocument converts a domain Book to a SearchDocument.
func BookToSearchDocument(book *domain.Book) *SearchDocument {
	return &SearchDocument{
		ID:        book.ID,
		Type:      DocTypeBook,
		Name:      book.Title,
		CreatedAt: book.CreatedAt.UnixMilli(),
		UpdatedAt: book.UpdatedAt.UnixMilli(),
	}
}

// SectionToSearchDocument converts a domain Section to a SearchDocument.
func SectionToSearchDocument(section *domain.Section) *SearchDocument {
	return &SearchDocument{
		ID:        section.ID,
		Type:      DocTypeSection,
		Name:      section.Title,
		BookID:    section.BookID,
		CreatedAt: section.CreatedAt.UnixMilli(),
		UpdatedAt: section.UpdatedAt.UnixMilli(),
	}
}
