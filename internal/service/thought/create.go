package thought

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/solilop/solilop-backend/internal/domain"
	"github.com/solilop/solilop-backend/pkg/ctxutil"
)

// CreateThought classifies and stores a thought for the caller, then tries to
// deliver a whisper to someone who recently felt the opposite. The whisper
// outcome never changes the result.
func (s *Service) CreateThought(ctx context.Context, input CreateInput) (*domain.Thought, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Content = strings.TrimSpace(input.Content)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	t := &domain.Thought{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   input.Content,
		Sentiment: s.classifier.Classify(input.Content),
		CreatedAt: s.clock.Now(),
	}
	if err := s.thoughts.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create thought: %w", err)
	}

	s.log.InfoContext(ctx, "thought created",
		slog.String("thought_id", t.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("sentiment", t.Sentiment.String()),
	)

	s.matcher.Match(ctx, userID, t.Sentiment)

	return t, nil
}
