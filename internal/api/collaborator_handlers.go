package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerCollaboratorRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "add-collaborator",
		Method:      http.MethodPost,
		Path:        "/api/v1/books/{id}/collaborators",
		Summary:     "Add collaborator",
		Description: "Grants a user edit access to the book. Only the author may do this; adding twice is a no-op.",
		Tags:        []string{"Collaborators"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleAddCollaborator)

	huma.Register(s.api, huma.Operation{
		OperationID: "remove-collaborator",
		Method:      http.MethodDelete,
		Path:        "/api/v1/books/{id}/collaborators/{username}",
		Summary:     "Remove collaborator",
		Description: "Revokes a user's edit access. Removing a non-member is a no-op.",
		Tags:        []string{"Collaborators"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleRemoveCollaborator)

	huma.Register(s.api, huma.Operation{
		OperationID: "list-collaborators",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}/collaborators",
		Summary:     "List collaborators",
		Tags:        []string{"Collaborators"},
	}, s.handleListCollaborators)
}

// === DTOs ===

// AddCollaboratorRequest names the user to grant access to.
type AddCollaboratorRequest struct {
	Username string `json:"username" doc:"Username of the user to add"`
}

// AddCollaboratorInput is the Huma input for adding a collaborator.
type AddCollaboratorInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Book ID"`
	Body          AddCollaboratorRequest
}

// AddCollaboratorOutput is the Huma output wrapper for adding a collaborator.
type AddCollaboratorOutput struct {
	Body MessageResponse
}

// RemoveCollaboratorInput is the Huma input for removing a collaborator.
type RemoveCollaboratorInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Book ID"`
	Username      string `path:"username" doc:"Username of the collaborator to remove"`
}

// RemoveCollaboratorOutput is the Huma output wrapper for removing a collaborator.
type RemoveCollaboratorOutput struct {
	Body MessageResponse
}

// ListCollaboratorsInput is the Huma input for listing collaborators.
type ListCollaboratorsInput struct {
	ID string `path:"id" doc:"Book ID"`
}

// CollaboratorListResponse carries a book's collaborators.
type CollaboratorListResponse struct {
	Collaborators []UserResponse `json:"collaborators" doc:"Users with edit access"`
}

// ListCollaboratorsOutput is the Huma output wrapper for listing collaborators.
type ListCollaboratorsOutput struct {
	Body CollaboratorListResponse
}

// === Handlers ===

func (s *Server) handleAddCollaborator(ctx context.Context, input *AddCollaboratorInput) (*AddCollaboratorOutput, error) {
	user, err := s.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := s.services.Collaborator.AddCollaborator(ctx, user, input.ID, input.Body.Username)
	if err != nil {
		return nil, err
	}

	return &AddCollaboratorOutput{Body: MessageResponse{Message: msg}}, nil
}

func (s *Server) handleRemoveCollaborator(ctx context.Context, input *RemoveCollaboratorInput) (*RemoveCollaboratorOutput, error) {
	user, err := s.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := s.services.Collaborator.RemoveCollaborator(ctx, user, input.ID, input.Username)
	if err != nil {
		return nil, err
	}

	return &RemoveCollaboratorOutput{Body: MessageResponse{Message: msg}}, nil
}

func (s *Server) handleListCollaborators(ctx context.Context, input *ListCollaboratorsInput) (*ListCollaboratorsOutput, error) {
	users, err := s.services.Collaborator.ListCollaborators(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return &ListCollaboratorsOutput{Body: CollaboratorListResponse{Collaborators: out}}, nil
}
