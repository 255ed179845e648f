package whisper

import (
	"github.com/google/uuid"

	"github.com/solilop/solilop-backend/internal/domain"
)

// ListInput holds the parameters for listing the caller's whispers.
type ListInput struct {
	Limit      int
	Offset     int
	UnreadOnly bool
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListResult is a page of whispers plus the caller's total unread count.
type ListResult struct {
	Whispers    []*domain.Whisper
	UnreadCount int
}

// MarkReadInput identifies the whisper to mark as read.
type MarkReadInput struct {
	WhisperID uuid.UUID
}

func (i MarkReadInput) Validate() error {
	if i.WhisperID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
