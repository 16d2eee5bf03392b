// Package main provides a tool to seed the database with demo authoring data.
//
// It creates a handful of users, books, and section trees so the API has
// something to serve during development.
//
// Usage:
//
//	DB_PATH=~/Inkwell/data/store go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/inkwellapp/inkwell-server/internal/auth"
	"github.com/inkwellapp/inkwell-server/internal/color"
	"github.com/inkwellapp/inkwell-server/internal/domain"
	"github.com/inkwellapp/inkwell-server/internal/id"
	"github.com/inkwellapp/inkwell-server/internal/store"
)

// demoPassword is shared by all seeded accounts.
const demoPassword = "inkwell-demo-password"

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/Inkwell/data/store")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	s, err := store.New(dbPath, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	users := seedUsers(ctx, s)
	seedBooks(ctx, s, users)

	fmt.Println("Done. All demo accounts use password:", demoPassword)
}

func seedUsers(ctx context.Context, s *store.Store) map[string]*domain.User {
	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	users := make(map[string]*domain.User)
	for _, seed := range []struct {
		username    string
		displayName string
	}{
		{"ada", "Ada Lovelace"},
		{"grace", "Grace Hopper"},
		{"charles", "Charles Babbage"},
	} {
		if existing, err := s.Users.GetByIndex(ctx, "username", seed.username); err == nil {
			fmt.Printf("User %q already exists, skipping\n", seed.username)
			users[seed.username] = existing
			continue
		}

		user := &domain.User{
			Username:     seed.username,
			PasswordHash: hash,
			DisplayName:  seed.displayName,
		}
		user.ID = id.MustGenerate("user")
		user.AvatarColor = color.ForUser(user.ID)
		user.InitTimestamps()

		if err := s.Users.Create(ctx, user.ID, user); err != nil {
			log.Fatalf("Failed to create user %q: %v", seed.username, err)
		}
		fmt.Printf("Created user %s (%s)\n", user.Username, user.ID)
		users[seed.username] = user
	}
	return users
}

func seedBooks(ctx context.Context, s *store.Store, users map[string]*domain.User) {
	type sectionSeed struct {
		title    string
		children []sectionSeed
	}
	books := []struct {
		title         string
		author        string
		collaborators []string
		sections      []sectionSeed
	}{
		{
			title:         "Notes on the Analytical Engine",
			author:        "ada",
			collaborators: []string{"charles"},
			sections: []sectionSeed{
				{title: "Introduction"},
				{title: "On the Engine", children: []sectionSeed{
					{title: "The Mill"},
					{title: "The Store"},
				}},
				{title: "Closing Remarks"},
			},
		},
		{
			title:  "A Compiler's Tale",
			author: "grace",
			sections: []sectionSeed{
				{title: "Chapter One"},
				{title: "Chapter Two"},
			},
		},
	}

	for _, seed := range books {
		author := users[seed.author]
		if author == nil {
			log.Fatalf("Unknown author %q", seed.author)
		}

		if existing, err := findBookByTitle(ctx, s, author.ID, seed.title); err == nil && existing != nil {
			fmt.Printf("Book %q already exists, skipping\n", seed.title)
			continue
		}

		book := &domain.Book{
			Title:    seed.title,
			AuthorID: author.ID,
		}
		for _, username := range seed.collaborators {
			if collaborator := users[username]; collaborator != nil {
				book.AddCollaborator(collaborator.ID)
			}
		}
		book.ID = id.MustGenerate("book")
		book.InitTimestamps()

		if err := s.Books.Create(ctx, book.ID, book); err != nil {
			log.Fatalf("Failed to create book %q: %v", seed.title, err)
		}
		fmt.Printf("Created book %q (%s)\n", book.Title, book.ID)

		var create func(seeds []sectionSeed, parentID string)
		create = func(seeds []sectionSeed, parentID string) {
			for _, sec := range seeds {
				section := &domain.Section{
					Title:    sec.title,
					BookID:   book.ID,
					ParentID: parentID,
				}
				section.ID = id.MustGenerate("sect")
				section.InitTimestamps()

				if err := s.Sections.Create(ctx, section.ID, section); err != nil {
					log.Fatalf("Failed to create section %q: %v", sec.title, err)
				}
				create(sec.children, section.ID)
			}
		}
		create(seed.sections, "")
		fmt.Printf("  seeded %d top-level sections\n", len(seed.sections))
	}
}

func findBookByTitle(ctx context.Context, s *store.Store, authorID, title string) (*domain.Book, error) {
	books, err := s.Books.ListByIndex(ctx, "author", authorID)
	if err != nil {
		return nil, err
	}
	for _, b := range books {
		if b.Title == title {
			return b, nil
		}
	}
	return nil, errors.New("not found")
}
