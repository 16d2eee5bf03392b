package api

import (
	"time"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	"github.com/inkwellapp/inkwell-server/internal/store"
)

// === Response DTOs ===

// UserResponse is the public view of a user. The password hash never
// leaves the service layer.
type UserResponse struct {
	ID          string    `json:"id" doc:"User ID"`
	Username    string    `json:"username" doc:"Unique username"`
	DisplayName string    `json:"display_name,omitempty" doc:"Optional display name"`
	AvatarColor string    `json:"avatar_color,omitempty" doc:"Hex avatar color assigned at registration"`
	CreatedAt   time.Time `json:"created_at" doc:"Creation timestamp"`
	UpdatedAt   time.Time `json:"updated_at" doc:"Last update timestamp"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarColor: u.AvatarColor,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// BookResponse is the public view of a book.
type BookResponse struct {
	ID              string    `json:"id" doc:"Book ID"`
	Title           string    `json:"title" doc:"Book title"`
	AuthorID        string    `json:"author_id" doc:"ID of the authoring user"`
	CollaboratorIDs []string  `json:"collaborator_ids" doc:"IDs of users with edit access"`
	CreatedAt       time.Time `json:"created_at" doc:"Creation timestamp"`
	UpdatedAt       time.Time `json:"updated_at" doc:"Last update timestamp"`
}

func toBookResponse(b *domain.Book) BookResponse {
	collaborators := b.CollaboratorIDs
	if collaborators == nil {
		collaborators = []string{}
	}
	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		AuthorID:        b.AuthorID,
		CollaboratorIDs: collaborators,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// SectionResponse is the public view of a section.
type SectionResponse struct {
	ID        string    `json:"id" doc:"Section ID"`
	Title     string    `json:"title" doc:"Section title"`
	BookID    string    `json:"book_id" doc:"Owning book ID"`
	ParentID  string    `json:"parent_id,omitempty" doc:"Parent section ID, empty for roots"`
	CreatedAt time.Time `json:"created_at" doc:"Creation timestamp"`
	UpdatedAt time.Time `json:"updated_at" doc:"Last update timestamp"`
}

func toSectionResponse(sec *domain.Section) SectionResponse {
	return SectionResponse{
		ID:        sec.ID,
		Title:     sec.Title,
		BookID:    sec.BookID,
		ParentID:  sec.ParentID,
		CreatedAt: sec.CreatedAt,
		UpdatedAt: sec.UpdatedAt,
	}
}

// PageResponse is a page of results with navigation metadata.
type PageResponse[T any] struct {
	Count    int  `json:"count" doc:"Total number of matching items"`
	Next     *int `json:"next" doc:"Next page number, null on the last page"`
	Previous *int `json:"previous" doc:"Previous page number, null on the first page"`
	Results  []T  `json:"results" doc:"Items on this page"`
}

func toBookPageResponse(page *store.Page[*domain.Book]) PageResponse[BookResponse] {
	results := make([]BookResponse, len(page.Results))
	for i, b := range page.Results {
		results[i] = toBookResponse(b)
	}
	return PageResponse[BookResponse]{
		Count:    page.Count,
		Next:     page.Next,
		Previous: page.Previous,
		Results:  results,
	}
}

// MessageResponse carries a human-readable status message.
type MessageResponse struct {
	Message string `json:"message" doc:"Status message"`
}
