// Package main provides a read-only inspection tool for the Inkwell database.
//
// Usage:
//
//	DB_PATH=~/Inkwell/data/store go run ./cmd/dbinspect
package main

import (
	"encoding/json/v2"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/inkwellapp/inkwell-server/internal/domain"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/Inkwell/data/store")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Database Inspection ===")
	fmt.Println()

	userCount := countEntities(db, "user:")
	sectionsByBook := make(map[string]int)
	sectionCount := 0

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(prefixOptions("section:"))
		defer it.Close()

		for it.Seek([]byte("section:")); it.ValidForPrefix([]byte("section:")); it.Next() {
			item := it.Item()
			if isIndexKey(string(item.Key())) {
				continue
			}
			err := item.Value(func(val []byte) error {
				var section domain.Section
				if err := json.Unmarshal(val, &section); err != nil {
					return err
				}
				sectionCount++
				sectionsByBook[section.BookID]++
				return nil
			})
			if err != nil {
				log.Printf("Error reading section %s: %v", item.Key(), err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Error iterating sections: %v", err)
	}

	bookCount := 0
	shown := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(prefixOptions("book:"))
		defer it.Close()

		for it.Seek([]byte("book:")); it.ValidForPrefix([]byte("book:")); it.Next() {
			item := it.Item()
			key := string(item.Key())
			if isIndexKey(key) {
				continue
			}

			err := item.Value(func(val []byte) error {
				var book domain.Book
				if err := json.Unmarshal(val, &book); err != nil {
					return err
				}

				bookCount++
				if shown < 10 {
					shown++
					fmt.Printf("Book: %s\n", book.Title)
					fmt.Printf("  ID: %s\n", book.ID)
					fmt.Printf("  Author: %s\n", book.AuthorID)
					fmt.Printf("  Collaborators: %d\n", len(book.CollaboratorIDs))
					fmt.Printf("  Sections: %d\n", sectionsByBook[book.ID])
					fmt.Println()
				}
				return nil
			})
			if err != nil {
				log.Printf("Error reading book %s: %v", key, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Error iterating books: %v", err)
	}

	fmt.Println("=== Summary ===")
	fmt.Printf("Total users: %d\n", userCount)
	fmt.Printf("Total books: %d\n", bookCount)
	fmt.Printf("Total sections: %d\n", sectionCount)
	if bookCount > 0 {
		fmt.Printf("Average sections per book: %.1f\n", float64(sectionCount)/float64(bookCount))
	}
}

func prefixOptions(prefix string) badger.IteratorOptions {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	return opts
}

// isIndexKey reports whether a key is a secondary index entry rather
// than an entity value. Index keys look like "book:idx:author:...".
func isIndexKey(key string) bool {
	return strings.Contains(key, ":idx:")
}

func countEntities(db *badger.DB, prefix string) int {
	count := 0
	_ = db.View(func(txn *badger.Txn) error {
		opts := prefixOptions(prefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			if !isIndexKey(string(it.Item().Key())) {
				count++
			}
		}
		return nil
	})
	return count
}
