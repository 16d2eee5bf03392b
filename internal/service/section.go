package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	domainerrors "github.com/inkwellapp/inkwell-server/internal/errors"
	"github.com/inkwellapp/inkwell-server/internal/id"
	"github.com/inkwellapp/inkwell-server/internal/store"
)

// SectionService manages the per-book section forest.
type SectionService struct {
	store  *store.Store
	logger *slog.Logger
}

func NewSectionService(s *store.Store, logger *slog.Logger) *SectionService {
	return &SectionService{
		store:  s,
		logger: logger.With("service", "section"),
	}
}

// CreateSectionRequest carries the fields for a new section. ParentID is
// optional; when set it must reference a section of the same book.
type CreateSectionRequest struct {
	BookID   string `json:"book_id" validate:"required"`
	Title    string `json:"title" validate:"required,max=256"`
	ParentID string `json:"parent_id"`
}

// CreateSection adds a section to a book. Only the book's author may do
// this.
func (s *SectionService) CreateSection(ctx context.Context, user *domain.User, req CreateSectionRequest) (*domain.Section, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validate.Validate(&req); err != nil {
		return nil, err
	}

	if _, err := loadBookFor(ctx, s.store, user, req.BookID, domain.CanCreateSection); err != nil {
		return nil, err
	}

	if req.ParentID != "" {
		parent, err := s.store.Sections.Get(ctx, req.ParentID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, domainerrors.Validation("parent section does not exist")
			}
			return nil, storeError(err, "Section not found")
		}
		if parent.BookID != req.BookID {
			return nil, domainerrors.Validation("parent section belongs to a different book")
		}
	}

	section := &domain.Section{
		Title:    req.Title,
		BookID:   req.BookID,
		ParentID: req.ParentID,
	}
	sectionID, err := id.Generate("sect")
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to generate section ID")
	}
	section.ID = sectionID
	section.InitTimestamps()

	if err := s.store.Sections.Create(ctx, section.ID, section); err != nil {
		return nil, storeError(err, "Section not found")
	}

	if err := s.store.Indexer().IndexSection(ctx, section); err != nil {
		s.logger.Warn("failed to index section", "section_id", section.ID, "error", err)
	}

	s.logger.Info("section created", "section_id", section.ID, "book_id", req.BookID, "parent_id", req.ParentID)
	return section, nil
}

// EditSectionTitle renames a section. The author and collaborators of
// the owning book may do this. An empty title is accepted and leaves the
// section unchanged.
func (s *SectionService) EditSectionTitle(ctx context.Context, user *domain.User, sectionID, newTitle string) (*domain.Section, error) {
	section, err := s.store.Sections.Get(ctx, sectionID)
	if err != nil {
		return nil, storeError(err, "Section not found")
	}

	if _, err := loadBookFor(ctx, s.store, user, section.BookID, domain.CanEditSection); err != nil {
		return nil, err
	}

	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return section, nil
	}

	section.Title = newTitle
	section.Touch()
	if err := s.store.Sections.Update(ctx, section.ID, section); err != nil {
		return nil, storeError(err, "Section not found")
	}

	if err := s.store.Indexer().IndexSection(ctx, section); err != nil {
		s.logger.Warn("failed to index section", "section_id", section.ID, "error", err)
	}

	s.logger.Info("section renamed", "section_id", section.ID, "book_id", section.BookID)
	return section, nil
}

// DeleteSection removes a section and every descendant under it. Only
// the book's author may delete.
func (s *SectionService) DeleteSection(ctx context.Context, user *domain.User, sectionID string) error {
	section, err := s.store.Sections.Get(ctx, sectionID)
	if err != nil {
		return storeError(err, "Section not found")
	}

	if _, err := loadBookFor(ctx, s.store, user, section.BookID, domain.CanDeleteSection); err != nil {
		return err
	}

	ids, err := s.collectSubtree(ctx, sectionID)
	if err != nil {
		return err
	}

	for _, sid := range ids {
		if err := s.store.Sections.Delete(ctx, sid); err != nil {
			return storeError(err, "Section not found")
		}
		if err := s.store.Indexer().DeleteSection(ctx, sid); err != nil {
			s.logger.Warn("failed to remove section from index", "section_id", sid, "error", err)
		}
	}

	s.logger.Info("section deleted", "section_id", sectionID, "book_id", section.BookID, "descendants", len(ids)-1)
	return nil
}

// collectSubtree returns the ids of the section and all its descendants,
// children before parents so deletion never leaves an orphan pointing at
// a missing ancestor.
func (s *SectionService) collectSubtree(ctx context.Context, rootID string) ([]string, error) {
	var ordered []string
	queue := []string{rootID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		ordered = append(ordered, current)

		children, err := s.store.Sections.ListByIndex(ctx, "parent", current)
		if err != nil {
			return nil, storeError(err, "Section not found")
		}
		for _, child := range children {
			queue = append(queue, child.ID)
		}
	}

	// Reverse to leaf-first order.
	for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	}
	return ordered, nil
}

// ListSections returns a book's sections, roots first, each level
// ordered by creation time.
func (s *SectionService) ListSections(ctx context.Context, bookID string) ([]*domain.Section, error) {
	if _, err := s.store.Books.Get(ctx, bookID); err != nil {
		return nil, storeError(err, "Book not found")
	}

	sections, err := s.store.Sections.ListByIndex(ctx, "book", bookID)
	if err != nil {
		return nil, storeError(err, "Book not found")
	}

	sort.SliceStable(sections, func(i, j int) bool {
		a, b := sections[i], sections[j]
		if a.IsRoot() != b.IsRoot() {
			return a.IsRoot()
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return sections, nil
}
