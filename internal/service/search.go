package service

import (
	"context"
	"log/slog"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	domainerrors "github.com/inkwellapp/inkwell-server/internal/errors"
	"github.com/inkwellapp/inkwell-server/internal/search"
	"github.com/inkwellapp/inkwell-server/internal/store"
)

// SearchService exposes full-text search over book and section titles.
// It also implements store.SearchIndexer so the store keeps the index in
// sync as entities change.
type SearchService struct {
	store  *store.Store
	index  *search.SearchIndex
	logger *slog.Logger
}

func NewSearchService(s *store.Store, index *search.SearchIndex, logger *slog.Logger) *SearchService {
	svc := &SearchService{
		store:  s,
		index:  index,
		logger: logger.With("service", "search"),
	}
	s.SetSearchIndexer(svc)
	return svc
}

// SearchRequest carries search parameters from the API layer.
type SearchRequest struct {
	Query  string
	Types  []string
	BookID string
	Limit  int
	Offset int
}

// Search runs a title query across books and sections.
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (*search.SearchResult, error) {
	if req.Query == "" {
		return nil, domainerrors.Validation("search query is required")
	}

	params := search.DefaultSearchParams()
	params.Query = req.Query
	params.BookID = req.BookID
	if req.Limit > 0 {
		params.Limit = min(req.Limit, 100)
	}
	if req.Offset > 0 {
		params.Offset = req.Offset
	}
	for _, t := range req.Types {
		switch t {
		case string(search.DocTypeBook), string(search.DocTypeSection):
			params.Types = append(params.Types, t)
		default:
			return nil, domainerrors.Validationf("unknown search type %q", t)
		}
	}

	result, err := s.index.Search(ctx, params)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "search failed")
	}
	return result, nil
}

// DocumentCount reports the number of indexed documents.
func (s *SearchService) DocumentCount() (uint64, error) {
	return s.index.DocumentCount()
}

// ReindexAll rebuilds the search index from the store. Used at startup
// recovery and by the rebuild admin path.
func (s *SearchService) ReindexAll(ctx context.Context) error {
	if err := s.index.Rebuild(); err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to reset search index")
	}

	var docs []*search.SearchDocument

	books, err := s.store.Books.All(ctx)
	if err != nil {
		return storeError(err, "Book not found")
	}
	for _, b := range books {
		docs = append(docs, search.BookToSearchDocument(b))
	}

	sections, err := s.store.Sections.All(ctx)
	if err != nil {
		return storeError(err, "Section not found")
	}
	for _, sec := range sections {
		docs = append(docs, search.SectionToSearchDocument(sec))
	}

	if err := s.index.IndexDocuments(docs); err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to rebuild search index")
	}

	s.logger.Info("search index rebuilt", "documents", len(docs))
	return nil
}

// store.SearchIndexer implementation. Indexing failures are reported to
// the caller; services treat them as non-fatal and log.

func (s *SearchService) IndexBook(ctx context.Context, book *domain.Book) error {
	return s.index.IndexDocument(search.BookToSearchDocument(book))
}

func (s *SearchService) DeleteBook(ctx context.Context, bookID string) error {
	return s.index.DeleteDocument(bookID)
}

func (s *SearchService) IndexSection(ctx context.Context, section *domain.Section) error {
	return s.index.IndexDocument(search.SectionToSearchDocument(section))
}

func (s *SearchService) DeleteSection(ctx context.Context, sectionID string) error {
	return s.index.DeleteDocument(sectionID)
}
