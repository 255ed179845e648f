package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/solilop/solilop-backend/internal/auth"
	"github.com/solilop/solilop-backend/internal/domain"
	"github.com/solilop/solilop-backend/pkg/ctxutil"
)

// Logout ends the session of the token the request was authenticated with.
// Returns ErrUnauthorized if the context carries no token.
func (s *Service) Logout(ctx context.Context) error {
	token := ctxutil.TokenFromCtx(ctx)
	if token == "" {
		return domain.ErrUnauthorized
	}

	if err := s.sessions.Delete(ctx, auth.HashToken(token)); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	}
	return nil
}

// ValidateToken accepts a token only if it verifies and its session is still
// live. Returns ErrUnauthorized otherwise; store failures are returned as-is.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}

	sess, err := s.sessions.Get(ctx, auth.HashToken(token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, domain.ErrUnauthorized
		}
		return uuid.Nil, fmt.Errorf("auth.ValidateToken: %w", err)
	}
	if sess.UserID != userID {
		return uuid.Nil, domain.ErrUnauthorized
	}

	return userID, nil
}
