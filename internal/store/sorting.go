package store

import (
	"slices"
	"sort"
	"strings"

	"github.com/inkwellapp/inkwell-server/internal/domain"
)

// SortField is one parsed field of a sort expression.
type SortField struct {
	Field string
	Desc  bool
}

// BookSortFields is the allow-list of fields books can be sorted by.
var BookSortFields = []string{"id", "title", "created_at", "updated_at"}

// DefaultBookSort is applied when no sort expression is given: newest first.
var DefaultBookSort = []SortField{{Field: "created_at", Desc: true}}

// ParseSort parses a comma-separated sort expression like "-created_at,title".
// A leading "-" marks a field descending. Fields outside the allow-list are
// dropped without error; a caller sorting by only unknown fields gets the
// default order.
func ParseSort(raw string, allowed []string) []SortField {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var fields []SortField
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		field := SortField{Field: part}
		if strings.HasPrefix(part, "-") {
			field = SortField{Field: part[1:], Desc: true}
		}

		if !slices.Contains(allowed, field.Field) {
			continue
		}

		fields = append(fields, field)
	}

	return fields
}

// SortBooks sorts books in place by the given fields, applied in order.
// Ties on every field fall back to ID for a stable, deterministic order.
func SortBooks(books []*domain.Book, fields []SortField) {
	if len(fields) == 0 {
		fields = DefaultBookSort
	}

	sort.SliceStable(books, func(i, j int) bool {
		a, b := books[i], books[j]
		for _, f := range fields {
			cmp := compareBooks(a, b, f.Field)
			if cmp == 0 {
				continue
			}
			if f.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return a.ID < b.ID
	})
}

func compareBooks(a, b *domain.Book, field string) int {
	switch field {
	case "id":
		return strings.Compare(a.ID, b.ID)
	case "title":
		return strings.Compare(a.Title, b.Title)
	case "created_at":
		return a.CreatedAt.Compare(b.CreatedAt)
	case "updated_at":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	default:
		return 0
	}
}
