package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	domainerrors "github.com/inkwellapp/inkwell-server/internal/errors"
	"github.com/inkwellapp/inkwell-server/internal/id"
	"github.com/inkwellapp/inkwell-server/internal/store"
)

// BookService manages books and their listing.
type BookService struct {
	store  *store.Store
	logger *slog.Logger
}

func NewBookService(s *store.Store, logger *slog.Logger) *BookService {
	return &BookService{
		store:  s,
		logger: logger.With("service", "book"),
	}
}

// CreateBookRequest carries the fields for a new book.
type CreateBookRequest struct {
	Title string `json:"title" validate:"required,max=256"`
}

// CreateBook creates a book authored by the calling user.
func (s *BookService) CreateBook(ctx context.Context, user *domain.User, req CreateBookRequest) (*domain.Book, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validate.Validate(&req); err != nil {
		return nil, err
	}

	book := &domain.Book{
		Title:    req.Title,
		AuthorID: user.ID,
	}
	bookID, err := id.Generate("book")
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to generate book ID")
	}
	book.ID = bookID
	book.InitTimestamps()

	if err := s.store.Books.Create(ctx, book.ID, book); err != nil {
		return nil, storeError(err, "Book not found")
	}

	if err := s.store.Indexer().IndexBook(ctx, book); err != nil {
		s.logger.Warn("failed to index book", "book_id", book.ID, "error", err)
	}

	s.logger.Info("book created", "book_id", book.ID, "author_id", user.ID)
	return book, nil
}

// ListBooksParams controls filtering, ordering and paging of the book
// listing. All fields are optional.
type ListBooksParams struct {
	SortBy   string
	AuthorID string
	Page     store.PageParams
}

// ListBooks returns a page of books. Sort keys outside the allow-list
// are ignored; with no usable keys the newest books come first. When
// AuthorID is set only that author's books are returned.
func (s *BookService) ListBooks(ctx context.Context, params ListBooksParams) (*store.Page[*domain.Book], error) {
	var (
		books []*domain.Book
		err   error
	)
	if params.AuthorID != "" {
		books, err = s.store.Books.ListByIndex(ctx, "author", params.AuthorID)
	} else {
		books, err = s.store.Books.All(ctx)
	}
	if err != nil {
		return nil, storeError(err, "Book not found")
	}

	store.SortBooks(books, store.ParseSort(params.SortBy, store.BookSortFields))

	params.Page.Validate()
	page := store.Paginate(books, params.Page)
	return &page, nil
}

// GetBook fetches a single book.
func (s *BookService) GetBook(ctx context.Context, bookID string) (*domain.Book, error) {
	book, err := s.store.Books.Get(ctx, bookID)
	if err != nil {
		return nil, storeError(err, "Book not found")
	}
	return book, nil
}

// loadBookFor loads a book and applies an authorization predicate on
// behalf of the given user. Shared by the section and collaborator
// services.
func loadBookFor(ctx context.Context, s *store.Store, user *domain.User, bookID string, allowed func(*domain.User, *domain.Book) bool) (*domain.Book, error) {
	book, err := s.Books.Get(ctx, bookID)
	if err != nil {
		return nil, storeError(err, "Book not found")
	}
	if !allowed(user, book) {
		return nil, domainerrors.Forbidden("you do not have permission to perform this action")
	}
	return book, nil
}
