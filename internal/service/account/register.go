package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
)

// LoginResult is returned by Login.
type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *domain.User
}

// Register creates an account with the user role.
// Returns ErrAlreadyExists if the email or username is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account.Register: %w", err)
	}

	now := s.now()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("account.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Login verifies a password and issues an access token. Unknown emails and
// wrong passwords both return ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("account.Login: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.GenerateAccessToken(user.Principal())
	if err != nil {
		return nil, fmt.Errorf("account.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   s.tokens.AccessTTL(),
		User:        user,
	}, nil
}

// Resolve turns a bearer token into a principal. The role is re-read from
// the store so a demotion takes effect before the token expires. Tokens of
// deleted accounts are rejected.
func (s *Service) Resolve(ctx context.Context, token string) (domain.Principal, error) {
	claimed, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return domain.Anonymous(), domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, claimed.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Anonymous(), domain.ErrUnauthorized
		}
		return domain.Anonymous(), fmt.Errorf("account.Resolve: %w", err)
	}
	return user.Principal(), nil
}

// Profile returns the principal's own account.
func (s *Service) Profile(ctx context.Context, p domain.Principal) (*domain.User, error) {
	if p.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("account.Profile: %w", err)
	}
	return user, nil
}
