package whisper

import (
	"context"
	"github.com/google/uuid"
	"github.com/solilop/solilop-backend/internal/domain"
	"sync"
)

var _ whisperRepo = &whisperRepoMock{}

type whisperRepoMock struct {
	ListByRecipientFunc func(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit int, offset int) ([]*domain.Whisper, error)
	CountUnreadFunc     func(ctx context.Context, recipientID uuid.UUID) (int, error)
	MarkReadFunc        func(ctx context.Context, recipientID uuid.UUID, whisperID uuid.UUID) error

	calls struct {
		ListByRecipient []struct {
			Ctx         context.Context
			RecipientID uuid.UUID
			UnreadOnly  bool
			Limit       int
			Offset      int
		}
		CountUnread []struct {
			Ctx         context.Context
			RecipientID uuid.UUID
		}
		MarkRead []struct {
			Ctx         context.Context
			RecipientID uuid.UUID
			WhisperID   uuid.UUID
		}
	}
	lockListByRecipient sync.RWMutex
	lockCountUnread     sync.RWMutex
	lockMarkRead        sync.RWMutex
}

func (mock *whisperRepoMock) ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit int, offset int) ([]*domain.Whisper, error) {
	if mock.ListByRecipientFunc == nil {
		panic("whisperRepoMock.ListByRecipientFunc: method is nil but whisperRepo.ListByRecipient was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RecipientID uuid.UUID
		UnreadOnly  bool
		Limit       int
		Offset      int
	}{Ctx: ctx, RecipientID: recipientID, UnreadOnly: unreadOnly, Limit: limit, Offset: offset}
	mock.lockListByRecipient.Lock()
	mock.calls.ListByRecipient = append(mock.calls.ListByRecipient, callInfo)
	mock.lockListByRecipient.Unlock()
	return mock.ListByRecipientFunc(ctx, recipientID, unreadOnly, limit, offset)
}

func (mock *whisperRepoMock) ListByRecipientCalls() []struct {
	Ctx         context.Context
	RecipientID uuid.UUID
	UnreadOnly  bool
	Limit       int
	Offset      int
} {
	var calls []struct {
		Ctx         context.Context
		RecipientID uuid.UUID
		UnreadOnly  bool
		Limit       int
		Offset      int
	}
	mock.lockListByRecipient.RLock()
	calls = mock.calls.ListByRecipient
	mock.lockListByRecipient.RUnlock()
	return calls
}

func (mock *whisperRepoMock) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	if mock.CountUnreadFunc == nil {
		panic("whisperRepoMock.CountUnreadFunc: method is nil but whisperRepo.CountUnread was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RecipientID uuid.UUID
	}{Ctx: ctx, RecipientID: recipientID}
	mock.lockCountUnread.Lock()
	mock.calls.CountUnread = append(mock.calls.CountUnread, callInfo)
	mock.lockCountUnread.Unlock()
	return mock.CountUnreadFunc(ctx, recipientID)
}

func (mock *whisperRepoMock) CountUnreadCalls() []struct {
	Ctx         context.Context
	RecipientID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		RecipientID uuid.UUID
	}
	mock.lockCountUnread.RLock()
	calls = mock.calls.CountUnread
	mock.lockCountUnread.RUnlock()
	return calls
}

func (mock *whisperRepoMock) MarkRead(ctx context.Context, recipientID uuid.UUID, whisperID uuid.UUID) error {
	if mock.MarkReadFunc == nil {
		panic("whisperRepoMock.MarkReadFunc: method is nil but whisperRepo.MarkRead was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RecipientID uuid.UUID
		WhisperID   uuid.UUID
	}{Ctx: ctx, RecipientID: recipientID, WhisperID: whisperID}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, recipientID, whisperID)
}

func (mock *whisperRepoMock) MarkReadCalls() []struct {
	Ctx         context.Context
	RecipientID uuid.UUID
	WhisperID   uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		RecipientID uuid.UUID
		WhisperID   uuid.UUID
	}
	mock.lockMarkRead.RLock()
	calls = mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}
