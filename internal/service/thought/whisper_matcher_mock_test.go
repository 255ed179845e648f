package thought

import (
	"context"
	"github.com/google/uuid"
	"github.com/solilop/solilop-backend/internal/domain"
	"sync"
)

var _ whisperMatcher = &whisperMatcherMock{}

type whisperMatcherMock struct {
	MatchFunc func(ctx context.Context, sourceUserID uuid.UUID, source domain.Sentiment) *domain.Whisper

	calls struct {
		Match []struct {
			Ctx          context.Context
			SourceUserID uuid.UUID
			Source       domain.Sentiment
		}
	}
	lockMatch sync.RWMutex
}

func (mock *whisperMatcherMock) Match(ctx context.Context, sourceUserID uuid.UUID, source domain.Sentiment) *domain.Whisper {
	if mock.MatchFunc == nil {
		panic("whisperMatcherMock.MatchFunc: method is nil but whisperMatcher.Match was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SourceUserID uuid.UUID
		Source       domain.Sentiment
	}{Ctx: ctx, SourceUserID: sourceUserID, Source: source}
	mock.lockMatch.Lock()
	mock.calls.Match = append(mock.calls.Match, callInfo)
	mock.lockMatch.Unlock()
	return mock.MatchFunc(ctx, sourceUserID, source)
}

func (mock *whisperMatcherMock) MatchCalls() []struct {
	Ctx          context.Context
	SourceUserID uuid.UUID
	Source       domain.Sentiment
} {
	var calls []struct {
		Ctx          context.Context
		SourceUserID uuid.UUID
		Source       domain.Sentiment
	}
	mock.lockMatch.RLock()
	calls = mock.calls.Match
	mock.lockMatch.RUnlock()
	return calls
}
