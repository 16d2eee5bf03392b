package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkwellapp/inkwell-server/internal/search"
	"github.com/inkwellapp/inkwell-server/internal/service"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search books and sections",
		Description: "Full-text search over book and section titles",
		Tags:        []string{"Search"},
	}, s.handleSearch)
}

// === DTOs ===

// SearchInput is the Huma input for a search request.
type SearchInput struct {
	Query  string   `query:"q" doc:"Search query"`
	Types  []string `query:"type" doc:"Restrict to document types (book, section)"`
	BookID string   `query:"book_id" doc:"Restrict to a single book"`
	Limit  int      `query:"limit" doc:"Maximum hits to return, at most 100"`
	Offset int      `query:"offset" doc:"Hits to skip, for paging"`
}

// SearchHitResponse is a single search hit.
type SearchHitResponse struct {
	ID         string            `json:"id" doc:"Document ID"`
	Type       string            `json:"type" doc:"Document type (book or section)"`
	Name       string            `json:"name" doc:"Matched title"`
	BookID     string            `json:"book_id,omitempty" doc:"Owning book for section hits"`
	Score      float64           `json:"score" doc:"Relevance score"`
	Highlights map[string]string `json:"highlights,omitempty" doc:"Highlighted match fragments"`
}

// SearchResponse carries search hits and totals.
type SearchResponse struct {
	Hits  []SearchHitResponse `json:"hits" doc:"Matching documents"`
	Total uint64              `json:"total" doc:"Total number of matches"`
}

// SearchOutput is the Huma output wrapper for search.
type SearchOutput struct {
	Body SearchResponse
}

// === Handlers ===

func (s *Server) handleSearch(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	result, err := s.services.Search.Search(ctx, service.SearchRequest{
		Query:  input.Query,
		Types:  input.Types,
		BookID: input.BookID,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, err
	}

	return &SearchOutput{Body: toSearchResponse(result)}, nil
}

func toSearchResponse(result *search.SearchResult) SearchResponse {
	hits := make([]SearchHitResponse, len(result.Hits))
	for i, hit := range result.Hits {
		hits[i] = SearchHitResponse{
			ID:         hit.ID,
			Type:       string(hit.Type),
			Name:       hit.Name,
			BookID:     hit.BookID,
			Score:      hit.Score,
			Highlights: hit.Highlights,
		}
	}
	return SearchResponse{Hits: hits, Total: result.Total}
}
