// Package thought records a user's thoughts and triggers whisper delivery.
package thought

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/solilop/solilop-backend/internal/domain"
)

const (
	DefaultLimit     = 20
	MaxLimit         = 100
	MaxContentLength = 2000
)

type thoughtRepo interface {
	Create(ctx context.Context, t *domain.Thought) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Thought, error)
}

type classifier interface {
	Classify(text string) domain.Sentiment
}

// whisperMatcher never fails; a nil whisper means nobody was reached.
type whisperMatcher interface {
	Match(ctx context.Context, sourceUserID uuid.UUID, source domain.Sentiment) *domain.Whisper
}

// Service handles thought submission and listing.
type Service struct {
	log        *slog.Logger
	thoughts   thoughtRepo
	classifier classifier
	matcher    whisperMatcher
	clock      clockwork.Clock
}

// NewService creates a thought service.
func NewService(
	logger *slog.Logger,
	thoughts thoughtRepo,
	classifier classifier,
	matcher whisperMatcher,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:        logger.With("service", "thought"),
		thoughts:   thoughts,
		classifier: classifier,
		matcher:    matcher,
		clock:      clock,
	}
}
