package rest

import (
	"context"
	"github.com/solilop/solilop-backend/internal/domain"
	"github.com/solilop/solilop-backend/internal/service/thought"
	"sync"
)

var _ thoughtService = &thoughtServiceMock{}

type thoughtServiceMock struct {
	CreateThoughtFunc func(ctx context.Context, input thought.CreateInput) (*domain.Thought, error)
	ListThoughtsFunc  func(ctx context.Context, input thought.ListInput) ([]*domain.Thought, error)

	calls struct {
		CreateThought []struct {
			Ctx   context.Context
			Input thought.CreateInput
		}
		ListThoughts []struct {
			Ctx   context.Context
			Input thought.ListInput
		}
	}
	lockCreateThought sync.RWMutex
	lockListThoughts  sync.RWMutex
}

func (mock *thoughtServiceMock) CreateThought(ctx context.Context, input thought.CreateInput) (*domain.Thought, error) {
	if mock.CreateThoughtFunc == nil {
		panic("thoughtServiceMock.CreateThoughtFunc: method is nil but thoughtService.CreateThought was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input thought.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateThought.Lock()
	mock.calls.CreateThought = append(mock.calls.CreateThought, callInfo)
	mock.lockCreateThought.Unlock()
	return mock.CreateThoughtFunc(ctx, input)
}

func (mock *thoughtServiceMock) CreateThoughtCalls() []struct {
	Ctx   context.Context
	Input thought.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input thought.CreateInput
	}
	mock.lockCreateThought.RLock()
	calls = mock.calls.CreateThought
	mock.lockCreateThought.RUnlock()
	return calls
}

func (mock *thoughtServiceMock) ListThoughts(ctx context.Context, input thought.ListInput) ([]*domain.Thought, error) {
	if mock.ListThoughtsFunc == nil {
		panic("thoughtServiceMock.ListThoughtsFunc: method is nil but thoughtService.ListThoughts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input thought.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListThoughts.Lock()
	mock.calls.ListThoughts = append(mock.calls.ListThoughts, callInfo)
	mock.lockListThoughts.Unlock()
	return mock.ListThoughtsFunc(ctx, input)
}

func (mock *thoughtServiceMock) ListThoughtsCalls() []struct {
	Ctx   context.Context
	Input thought.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input thought.ListInput
	}
	mock.lockListThoughts.RLock()
	calls = mock.calls.ListThoughts
	mock.lockListThoughts.RUnlock()
	return calls
}
