package whisper

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/solilop/solilop-backend/internal/domain"
	"github.com/solilop/solilop-backend/pkg/ctxutil"
)

// ListWhispers returns the caller's whispers, newest first, together with
// the number of whispers they have not read yet.
func (s *Service) ListWhispers(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	var (
		items  []*domain.Whisper
		unread int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.whispers.ListByRecipient(gctx, userID, input.UnreadOnly, limit, input.Offset)
		if err != nil {
			return fmt.Errorf("list whispers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		unread, err = s.whispers.CountUnread(gctx, userID)
		if err != nil {
			return fmt.Errorf("count unread whispers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ListResult{Whispers: items, UnreadCount: unread}, nil
}
