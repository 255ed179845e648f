package auth

import (
	"context"
	"github.com/solilop/solilop-backend/internal/domain"
	"sync"
	"time"
)

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	CreateFunc func(ctx context.Context, tokenHash string, sess domain.Session, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, tokenHash string) error
	GetFunc    func(ctx context.Context, tokenHash string) (*domain.Session, error)

	calls struct {
		Create []struct {
			Ctx       context.Context
			TokenHash string
			Sess      domain.Session
			Ttl       time.Duration
		}
		Delete []struct {
			Ctx       context.Context
			TokenHash string
		}
		Get []struct {
			Ctx       context.Context
			TokenHash string
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
}

func (mock *sessionStoreMock) Create(ctx context.Context, tokenHash string, sess domain.Session, ttl time.Duration) error {
	if mock.CreateFunc == nil {
		panic("sessionStoreMock.CreateFunc: method is nil but sessionStore.Create was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
		Sess      domain.Session
		Ttl       time.Duration
	}{Ctx: ctx, TokenHash: tokenHash, Sess: sess, Ttl: ttl}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, tokenHash, sess, ttl)
}

func (mock *sessionStoreMock) CreateCalls() []struct {
	Ctx       context.Context
	TokenHash string
	Sess      domain.Session
	Ttl       time.Duration
} {
	var calls []struct {
		Ctx       context.Context
		TokenHash string
		Sess      domain.Session
		Ttl       time.Duration
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Delete(ctx context.Context, tokenHash string) error {
	if mock.DeleteFunc == nil {
		panic("sessionStoreMock.DeleteFunc: method is nil but sessionStore.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, tokenHash)
}

func (mock *sessionStoreMock) DeleteCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	var calls []struct {
		Ctx       context.Context
		TokenHash string
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Get(ctx context.Context, tokenHash string) (*domain.Session, error) {
	if mock.GetFunc == nil {
		panic("sessionStoreMock.GetFunc: method is nil but sessionStore.Get was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, tokenHash)
}

func (mock *sessionStoreMock) GetCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	var calls []struct {
		Ctx       context.Context
		TokenHash string
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
