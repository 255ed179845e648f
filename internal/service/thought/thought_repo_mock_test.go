package thought

import (
	"context"
	"github.com/google/uuid"
	"github.com/solilop/solilop-backend/internal/domain"
	"sync"
)

var _ thoughtRepo = &thoughtRepoMock{}

type thoughtRepoMock struct {
	CreateFunc     func(ctx context.Context, t *domain.Thought) error
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*domain.Thought, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Thought
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockCreate     sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *thoughtRepoMock) Create(ctx context.Context, t *domain.Thought) error {
	if mock.CreateFunc == nil {
		panic("thoughtRepoMock.CreateFunc: method is nil but thoughtRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Thought
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *thoughtRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Thought
} {
	var calls []struct {
		Ctx context.Context
		T   *domain.Thought
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *thoughtRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*domain.Thought, error) {
	if mock.ListByUserFunc == nil {
		panic("thoughtRepoMock.ListByUserFunc: method is nil but thoughtRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, Limit: limit, Offset: offset}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit, offset)
}

func (mock *thoughtRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}
	mock.lockListByUser.RLock()
	calls = mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
