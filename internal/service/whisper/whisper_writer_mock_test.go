package whisper

import (
	"context"
	"github.com/solilop/solilop-backend/internal/domain"
	"sync"
)

var _ whisperWriter = &whisperWriterMock{}

type whisperWriterMock struct {
	CreateFunc func(ctx context.Context, w *domain.Whisper) error

	calls struct {
		Create []struct {
			Ctx context.Context
			W   *domain.Whisper
		}
	}
	lockCreate sync.RWMutex
}

func (mock *whisperWriterMock) Create(ctx context.Context, w *domain.Whisper) error {
	if mock.CreateFunc == nil {
		panic("whisperWriterMock.CreateFunc: method is nil but whisperWriter.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Whisper
	}{Ctx: ctx, W: w}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *whisperWriterMock) CreateCalls() []struct {
	Ctx context.Context
	W   *domain.Whisper
} {
	var calls []struct {
		Ctx context.Context
		W   *domain.Whisper
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
