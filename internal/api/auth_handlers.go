package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkwellapp/inkwell-server/internal/service"
)

func (s *Server) registerAuthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/api/v1/auth/register",
		Summary:       "Register new user",
		Description:   "Creates a new user account. Usernames are unique case-insensitively.",
		Tags:          []string{"Authentication"},
		DefaultStatus: http.StatusCreated,
	}, s.handleRegister)

	huma.Register(s.api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/login",
		Summary:     "User login",
		Description: "Authenticates a user and returns an access token",
		Tags:        []string{"Authentication"},
	}, s.handleLogin)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-current-user",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/me",
		Summary:     "Get current user",
		Tags:        []string{"Users"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetCurrentUser)
}

// === DTOs ===

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Username    string `json:"username" doc:"Desired username, 3-32 alphanumeric characters"`
	Password    string `json:"password" doc:"Password, at least 8 characters"`
	DisplayName string `json:"display_name,omitempty" doc:"Optional display name"`
}

// RegisterInput is the Huma input for registration.
type RegisterInput struct {
	Body RegisterRequest
}

// RegisterOutput is the Huma output wrapper for registration.
type RegisterOutput struct {
	Body UserResponse
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username" doc:"Account username"`
	Password string `json:"password" doc:"Account password"`
}

// LoginInput is the Huma input for login.
type LoginInput struct {
	Body LoginRequest
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token    string `json:"token" doc:"PASETO access token"`
	ID       string `json:"id" doc:"User ID"`
	Username string `json:"username" doc:"Username"`
}

// LoginOutput is the Huma output wrapper for login.
type LoginOutput struct {
	Body LoginResponse
}

// CurrentUserInput is the Huma input for fetching the current user.
type CurrentUserInput struct {
	Authorization string `header:"Authorization"`
}

// CurrentUserOutput is the Huma output wrapper for the current user.
type CurrentUserOutput struct {
	Body UserResponse
}

// === Handlers ===

func (s *Server) handleRegister(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	user, err := s.services.Auth.Register(ctx, service.RegisterRequest{
		Username:    input.Body.Username,
		Password:    input.Body.Password,
		DisplayName: input.Body.DisplayName,
	})
	if err != nil {
		return nil, err
	}

	return &RegisterOutput{Body: toUserResponse(user)}, nil
}

func (s *Server) handleLogin(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	resp, err := s.services.Auth.Login(ctx, service.LoginRequest{
		Username: input.Body.Username,
		Password: input.Body.Password,
	})
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Body: LoginResponse{
		Token:    resp.Token,
		ID:       resp.ID,
		Username: resp.Username,
	}}, nil
}

func (s *Server) handleGetCurrentUser(ctx context.Context, _ *CurrentUserInput) (*CurrentUserOutput, error) {
	user, err := s.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	return &CurrentUserOutput{Body: toUserResponse(user)}, nil
}
