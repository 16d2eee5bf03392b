package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkwellapp/inkwell-server/internal/service"
	"github.com/inkwellapp/inkwell-server/internal/store"
)

func (s *Server) registerBookRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "create-book",
		Method:        http.MethodPost,
		Path:          "/api/v1/books",
		Summary:       "Create book",
		Description:   "Creates a book authored by the authenticated user",
		Tags:          []string{"Books"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "list-books",
		Method:      http.MethodGet,
		Path:        "/api/v1/books",
		Summary:     "List books",
		Description: "Public, paginated book listing with optional sorting and author filter",
		Tags:        []string{"Books"},
	}, s.handleListBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-book",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}",
		Summary:     "Get book",
		Tags:        []string{"Books"},
	}, s.handleGetBook)
}

// === DTOs ===

// CreateBookRequest is the request body for creating a book.
type CreateBookRequest struct {
	Title string `json:"title" doc:"Book title"`
}

// CreateBookInput is the Huma input for creating a book.
type CreateBookInput struct {
	Authorization string `header:"Authorization"`
	Body          CreateBookRequest
}

// CreateBookOutput is the Huma output wrapper for creating a book.
type CreateBookOutput struct {
	Body BookResponse
}

// ListBooksInput is the Huma input for the book listing.
type ListBooksInput struct {
	SortBy   string `query:"sort_by" doc:"Comma-separated sort keys, '-' prefix for descending (id, title, created_at, updated_at)"`
	Author   string `query:"author" doc:"Only books by this author ID"`
	Page     int    `query:"page" doc:"Page number, starting at 1"`
	PageSize int    `query:"page_size" doc:"Items per page, at most 100"`
}

// ListBooksOutput is the Huma output wrapper for the book listing.
type ListBooksOutput struct {
	Body PageResponse[BookResponse]
}

// GetBookInput is the Huma input for fetching a book.
type GetBookInput struct {
	ID string `path:"id" doc:"Book ID"`
}

// GetBookOutput is the Huma output wrapper for fetching a book.
type GetBookOutput struct {
	Body BookResponse
}

// === Handlers ===

func (s *Server) handleCreateBook(ctx context.Context, input *CreateBookInput) (*CreateBookOutput, error) {
	user, err := s.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	book, err := s.services.Book.CreateBook(ctx, user, service.CreateBookRequest{
		Title: input.Body.Title,
	})
	if err != nil {
		return nil, err
	}

	return &CreateBookOutput{Body: toBookResponse(book)}, nil
}

func (s *Server) handleListBooks(ctx context.Context, input *ListBooksInput) (*ListBooksOutput, error) {
	page, err := s.services.Book.ListBooks(ctx, service.ListBooksParams{
		SortBy:   input.SortBy,
		AuthorID: input.Author,
		Page: store.PageParams{
			Page:     input.Page,
			PageSize: input.PageSize,
		},
	})
	if err != nil {
		return nil, err
	}

	return &ListBooksOutput{Body: toBookPageResponse(page)}, nil
}

func (s *Server) handleGetBook(ctx context.Context, input *GetBookInput) (*GetBookOutput, error) {
	book, err := s.services.Book.GetBook(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetBookOutput{Body: toBookResponse(book)}, nil
}
