package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/inkwellapp/inkwell-server/internal/auth"
	"github.com/inkwellapp/inkwell-server/internal/color"
	"github.com/inkwellapp/inkwell-server/internal/domain"
	domainerrors "github.com/inkwellapp/inkwell-server/internal/errors"
	"github.com/inkwellapp/inkwell-server/internal/id"
	"github.com/inkwellapp/inkwell-server/internal/store"
)

// AuthService handles registration, login and token verification.
type AuthService struct {
	store  *store.Store
	tokens *auth.TokenService
	logger *slog.Logger
}

func NewAuthService(s *store.Store, tokens *auth.TokenService, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:  s,
		tokens: tokens,
		logger: logger.With("service", "auth"),
	}
}

// RegisterRequest carries the fields needed to create an account.
type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=32,alphanum"`
	Password    string `json:"password" validate:"required,min=8,max=1024"`
	DisplayName string `json:"display_name" validate:"omitempty,max=64"`
}

// Register creates a new user. Usernames are unique case-insensitively;
// a taken username is reported as a validation failure on the username
// field, the same shape as any other bad input.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if err := validate.Validate(&req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to hash password")
	}

	user := &domain.User{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(req.DisplayName),
	}
	user.ID, err = id.Generate("user")
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to generate user ID")
	}
	user.AvatarColor = color.ForUser(user.ID)
	user.InitTimestamps()

	if err := s.store.Users.Create(ctx, user.ID, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domainerrors.ValidationWithDetails("validation failed", map[string]string{
				"username": "is already taken",
			})
		}
		return nil, storeError(err, "user not found")
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Login verifies credentials and issues an access token. Unknown
// username and wrong password produce the same error so callers cannot
// probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := validate.Validate(&req); err != nil {
		return nil, err
	}

	user, err := s.store.Users.GetByIndex(ctx, "username", req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.InvalidCredentials("invalid username or password")
		}
		return nil, storeError(err, "user not found")
	}

	ok, err := auth.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to verify password")
	}
	if !ok {
		return nil, domainerrors.InvalidCredentials("invalid username or password")
	}

	token, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to generate token")
	}

	s.logger.Info("user logged in", "user_id", user.ID, "username", user.Username)
	return &LoginResponse{Token: token, ID: user.ID, Username: user.Username}, nil
}

// VerifyAccessToken validates a bearer token and loads its user. Used by
// the request authentication path.
func (s *AuthService) VerifyAccessToken(ctx context.Context, token string) (*domain.User, *auth.AccessClaims, error) {
	claims, err := s.tokens.VerifyAccessToken(token)
	if err != nil {
		return nil, nil, domainerrors.Unauthorized("invalid or expired token")
	}

	user, err := s.store.Users.Get(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, domainerrors.Unauthorized("user no longer exists")
		}
		return nil, nil, storeError(err, "user not found")
	}

	return user, claims, nil
}

// GetUser fetches a user by id.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.store.Users.Get(ctx, userID)
	if err != nil {
		return nil, storeError(err, "User not found")
	}
	return user, nil
}
