package thought

import (
	"context"
	"fmt"

	"github.com/solilop/solilop-backend/internal/domain"
	"github.com/solilop/solilop-backend/pkg/ctxutil"
)

// ListThoughts returns the caller's own thoughts, newest first.
func (s *Service) ListThoughts(ctx context.Context, input ListInput) ([]*domain.Thought, error) {
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

	items, err := s.thoughts.ListByUser(ctx, userID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list thoughts: %w", err)
	}
	return items, nil
}
