package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkwellapp/inkwell-server/internal/service"
)

func (s *Server) registerSectionRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "create-section",
		Method:        http.MethodPost,
		Path:          "/api/v1/sections",
		Summary:       "Create section",
		Description:   "Adds a section to a book. Only the book's author may do this.",
		Tags:          []string{"Sections"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateSection)

	huma.Register(s.api, huma.Operation{
		OperationID: "list-sections",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}/sections",
		Summary:     "List sections",
		Description: "Returns a book's sections, roots first",
		Tags:        []string{"Sections"},
	}, s.handleListSections)

	huma.Register(s.api, huma.Operation{
		OperationID: "edit-section",
		Method:      http.MethodPatch,
		Path:        "/api/v1/sections/{id}",
		Summary:     "Edit section title",
		Description: "Renames a section. The book's author and collaborators may do this. An empty title leaves the section unchanged.",
		Tags:        []string{"Sections"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleEditSection)

	huma.Register(s.api, huma.Operation{
		OperationID: "delete-section",
		Method:      http.MethodDelete,
		Path:        "/api/v1/sections/{id}",
		Summary:     "Delete section",
		Description: "Deletes a section and all its descendants. Only the book's author may do this.",
		Tags:        []string{"Sections"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteSection)
}

// === DTOs ===

// CreateSectionRequest is the request body for creating a section.
type CreateSectionRequest struct {
	BookID   string `json:"book_id" doc:"Owning book ID"`
	Title    string `json:"title" doc:"Section title"`
	ParentID string `json:"parent_id,omitempty" doc:"Optional parent section ID, must belong to the same book"`
}

// CreateSectionInput is the Huma input for creating a section.
type CreateSectionInput struct {
	Authorization string `header:"Authorization"`
	Body          CreateSectionRequest
}

// CreateSectionOutput is the Huma output wrapper for creating a section.
type CreateSectionOutput struct {
	Body SectionResponse
}

// ListSectionsInput is the Huma input for listing a book's sections.
type ListSectionsInput struct {
	ID string `path:"id" doc:"Book ID"`
}

// SectionListResponse carries a book's sections.
type SectionListResponse struct {
	Sections []SectionResponse `json:"sections" doc:"Sections, roots first"`
}

// ListSectionsOutput is the Huma output wrapper for the section listing.
type ListSectionsOutput struct {
	Body SectionListResponse
}

// EditSectionRequest is the request body for renaming a section.
type EditSectionRequest struct {
	Title string `json:"title" doc:"New section title; empty leaves the current title"`
}

// EditSectionInput is the Huma input for renaming a section.
type EditSectionInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Section ID"`
	Body          EditSectionRequest
}

// EditSectionOutput is the Huma output wrapper for renaming a section.
type EditSectionOutput struct {
	Body SectionResponse
}

// DeleteSectionInput is the Huma input for deleting a section.
type DeleteSectionInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Section ID"`
}

// DeleteSectionOutput is the Huma output wrapper for deleting a section.
type DeleteSectionOutput struct {
	Body MessageResponse
}

// === Handlers ===

func (s *Server) handleCreateSection(ctx context.Context, input *CreateSectionInput) (*CreateSectionOutput, error) {
	user, err := s.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	section, err := s.services.Section.CreateSection(ctx, user, service.CreateSectionRequest{
		BookID:   input.Body.BookID,
		Title:    input.Body.Title,
		ParentID: input.Body.ParentID,
	})
	if err != nil {
		return nil, err
	}

	return &CreateSectionOutput{Body: toSectionResponse(section)}, nil
}

func (s *Server) handleListSections(ctx context.Context, input *ListSectionsInput) (*ListSectionsOutput, error) {
	sections, err := s.services.Section.ListSections(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	out := make([]SectionResponse, len(sections))
	for i, sec := range sections {
		out[i] = toSectionResponse(sec)
	}
	return &ListSectionsOutput{Body: SectionListResponse{Sections: out}}, nil
}

func (s *Server) handleEditSection(ctx context.Context, input *EditSectionInput) (*EditSectionOutput, error) {
	user, err := s.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	section, err := s.services.Section.EditSectionTitle(ctx, user, input.ID, input.Body.Title)
	if err != nil {
		return nil, err
	}

	return &EditSectionOutput{Body: toSectionResponse(section)}, nil
}

func (s *Server) handleDeleteSection(ctx context.Context, input *DeleteSectionInput) (*DeleteSectionOutput, error) {
	user, err := s.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Section.DeleteSection(ctx, user, input.ID); err != nil {
		return nil, err
	}

	return &DeleteSectionOutput{Body: MessageResponse{Message: "Section deleted."}}, nil
}
