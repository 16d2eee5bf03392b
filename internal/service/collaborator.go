package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	domainerrors "github.com/inkwellapp/inkwell-server/internal/errors"
	"github.com/inkwellapp/inkwell-server/internal/store"
)

// CollaboratorService manages who may work on a book besides its author.
type CollaboratorService struct {
	store  *store.Store
	logger *slog.Logger
}

func NewCollaboratorService(s *store.Store, logger *slog.Logger) *CollaboratorService {
	return &CollaboratorService{
		store:  s,
		logger: logger.With("service", "collaborator"),
	}
}

// AddCollaborator grants the named user edit access to the book. Only
// the author may do this. Adding someone twice is a no-op; the returned
// message is the same either way.
func (s *CollaboratorService) AddCollaborator(ctx context.Context, user *domain.User, bookID, username string) (string, error) {
	book, err := loadBookFor(ctx, s.store, user, bookID, domain.CanManageCollaborators)
	if err != nil {
		return "", err
	}

	collaborator, err := s.lookupUser(ctx, username)
	if err != nil {
		return "", err
	}

	if book.AddCollaborator(collaborator.ID) {
		book.Touch()
		if err := s.store.Books.Update(ctx, book.ID, book); err != nil {
			return "", storeError(err, "Book not found")
		}
		s.logger.Info("collaborator added", "book_id", book.ID, "collaborator_id", collaborator.ID)
	}

	return fmt.Sprintf("%s is now a collaborator.", collaborator.Username), nil
}

// RemoveCollaborator revokes the named user's edit access. Removing a
// user who was never a collaborator is a no-op.
func (s *CollaboratorService) RemoveCollaborator(ctx context.Context, user *domain.User, bookID, username string) (string, error) {
	book, err := loadBookFor(ctx, s.store, user, bookID, domain.CanManageCollaborators)
	if err != nil {
		return "", err
	}

	collaborator, err := s.lookupUser(ctx, username)
	if err != nil {
		return "", err
	}

	if book.RemoveCollaborator(collaborator.ID) {
		book.Touch()
		if err := s.store.Books.Update(ctx, book.ID, book); err != nil {
			return "", storeError(err, "Book not found")
		}
		s.logger.Info("collaborator removed", "book_id", book.ID, "collaborator_id", collaborator.ID)
	}

	return fmt.Sprintf("%s is no longer a collaborator.", collaborator.Username), nil
}

// ListCollaborators returns the book's collaborators as user records.
// Anyone who can see the book can see who works on it.
func (s *CollaboratorService) ListCollaborators(ctx context.Context, bookID string) ([]*domain.User, error) {
	book, err := s.store.Books.Get(ctx, bookID)
	if err != nil {
		return nil, storeError(err, "Book not found")
	}

	users := make([]*domain.User, 0, len(book.CollaboratorIDs))
	for _, uid := range book.CollaboratorIDs {
		u, err := s.store.Users.Get(ctx, uid)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, storeError(err, "User not found")
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *CollaboratorService) lookupUser(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.store.Users.GetByIndex(ctx, "username", username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, storeError(err, "User not found")
	}
	return u, nil
}
