package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/solilop/solilop-backend/internal/auth"
	"github.com/solilop/solilop-backend/internal/config"
	"github.com/solilop/solilop-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// sessionStore keeps the server side of issued tokens, keyed by token hash.
type sessionStore interface {
	Create(ctx context.Context, tokenHash string, sess domain.Session, ttl time.Duration) error
	Get(ctx context.Context, tokenHash string) (*domain.Session, error)
	Delete(ctx context.Context, tokenHash string) error
}

// jwtManager defines the token interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionStore
	jwt      jwtManager
	clock    clockwork.Clock
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionStore,
	jwt jwtManager,
	clock clockwork.Clock,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
		jwt:      jwt,
		clock:    clock,
		cfg:      cfg,
	}
}

// issueToken signs a token for user and stores the matching session.
func (s *Service) issueToken(ctx context.Context, user *domain.User) (*AuthResult, error) {
	token, err := s.jwt.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	sess := domain.Session{
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: s.clock.Now().Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Create(ctx, auth.HashToken(token), sess, s.cfg.SessionTTL); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}
