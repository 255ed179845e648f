package whisper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/solilop/solilop-backend/internal/domain"
	"github.com/solilop/solilop-backend/pkg/ctxutil"
)

// MarkRead flags a whisper addressed to the caller as read. Whispers owned
// by someone else are reported as not found. Marking twice is not an error.
func (s *Service) MarkRead(ctx context.Context, input MarkReadInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.whispers.MarkRead(ctx, userID, input.WhisperID); err != nil {
		return fmt.Errorf("mark whisper read: %w", err)
	}

	s.log.DebugContext(ctx, "whisper marked read",
		slog.String("user_id", userID.String()),
		slog.String("whisper_id", input.WhisperID.String()),
	)
	return nil
}
