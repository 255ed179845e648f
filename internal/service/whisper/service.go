package whisper

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/solilop/solilop-backend/internal/domain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type whisperRepo interface {
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]*domain.Whisper, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, recipientID, whisperID uuid.UUID) error
}

// Service exposes a user's whisper inbox.
type Service struct {
	whispers whisperRepo
	log      *slog.Logger
}

// NewService creates a whisper inbox service.
func NewService(log *slog.Logger, whispers whisperRepo) *Service {
	return &Service{
		whispers: whispers,
		log:      log.With("service", "whisper"),
	}
}
