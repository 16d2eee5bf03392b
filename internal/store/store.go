package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/inkwellapp/inkwell-server/internal/domain"
)

// SearchIndexer is the interface for updating the search index.
// Store uses this to keep search in sync without depending on search implementation.
type SearchIndexer interface {
	IndexBook(ctx context.Context, book *domain.Book) error
	DeleteBook(ctx context.Context, bookID string) error
	IndexSection(ctx context.Context, section *domain.Section) error
	DeleteSection(ctx context.Context, sectionID string) error
}

// NoopSearchIndexer is a no-op implementation for testing.
type NoopSearchIndexer struct{}

// IndexBook is a no-op.
func (NoopSearchIndexer) IndexBook(context.Context, *domain.Book) error { return nil }

// DeleteBook is a no-op.
func (NoopSearchIndexer) DeleteBook(context.Context, string) error { return nil }

// IndexSection is a no-op.
func (NoopSearchIndexer) IndexSection(context.Context, *domain.Section) error { return nil }

// DeleteSection is a no-op.
func (NoopSearchIndexer) DeleteSection(context.Context, string) error { return nil }

// NewNoopSearchIndexer creates a new no-op search indexer for testing.
func NewNoopSearchIndexer() SearchIndexer {
	return NoopSearchIndexer{}
}

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	// Search indexer for keeping search in sync with store changes.
	// Set via SetSearchIndexer after store creation to avoid circular dependencies.
	searchIndexer SearchIndexer

	// Generic entities
	Users    *Entity[domain.User]
	Books    *Entity[domain.Book]
	Sections *Entity[domain.Section]
}

// New creates a new Store instance with the given database path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	store := &Store{
		db:     db,
		logger: logger,
	}

	// Initialize generic entities
	store.initUsers()
	store.initBooks()
	store.initSections()

	if err := store.checkSchemaVersion(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return store, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}

// SetSearchIndexer sets the search indexer for keeping search in sync.
// This is set after store creation to avoid circular dependencies
// (store needs to exist before search service can be created).
func (s *Store) SetSearchIndexer(indexer SearchIndexer) {
	s.searchIndexer = indexer
}

// Indexer returns the configured search indexer, or a no-op if none is set.
func (s *Store) Indexer() SearchIndexer {
	if s.searchIndexer == nil {
		return NoopSearchIndexer{}
	}
	return s.searchIndexer
}

// schemaVersion is bumped when the key layout changes incompatibly.
const schemaVersion = 1

var schemaKey = []byte("meta:schema_version")

// checkSchemaVersion verifies the on-disk schema matches what this build
// expects, stamping new databases with the current version.
func (s *Store) checkSchemaVersion() error {
	ok, err := s.exists(schemaKey)
	if err != nil {
		return fmt.Errorf("check schema version: %w", err)
	}

	if !ok {
		return s.set(schemaKey, schemaVersion)
	}

	var version int
	if err := s.get(schemaKey, &version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("database schema version %d is not supported (want %d)", version, schemaVersion)
	}
	return nil
}

// Helper methods for database operations.

// get retrieves a value by key.
func (s *Store) get(key []byte, dest any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
}

// set stores a value by key.
func (s *Store) set(key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// exists checks if a key exists.
func (s *Store) exists(key []byte) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// initUsers initializes the Users entity on the store.
// Uses case-insensitive username indexing via domain.NormalizeUsername.
func (s *Store) initUsers() {
	s.Users = NewEntity[domain.User](s, "user:").
		WithIndexTransform("username",
			func(u *domain.User) []string {
				return []string{domain.NormalizeUsername(u.Username)}
			},
			domain.NormalizeUsername, // Transform lookups to be case-insensitive
		)
}

// initBooks initializes the Books entity on the store.
// Indexed by author for the author filter on listings.
func (s *Store) initBooks() {
	s.Books = NewEntity[domain.Book](s, "book:").
		WithMultiIndex("author", func(b *domain.Book) []string {
			return []string{b.AuthorID}
		})
}

// initSections initializes the Sections entity on the store.
// Indexed by book (for listing a book's outline) and by parent
// (for walking subtrees during cascade deletes).
func (s *Store) initSections() {
	s.Sections = NewEntity[domain.Section](s, "section:").
		WithMultiIndex("book", func(sec *domain.Section) []string {
			if sec.BookID == "" {
				return nil
			}
			return []string{sec.BookID}
		}).
		WithMultiIndex("parent", func(sec *domain.Section) []string {
			if sec.ParentID == "" {
				return nil
			}
			return []string{sec.ParentID}
		})
}
