// Package whisper implements the Whisper repository using PostgreSQL.
package whisper

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/solilop/solilop-backend/internal/adapter/postgres"
	"github.com/solilop/solilop-backend/internal/domain"
)

const table = "whispers"

var columns = []string{"id", "to_user_id", "message", "sentiment_match", "created_at", "is_read"}

type row struct {
	ID             uuid.UUID `db:"id"`
	ToUserID       uuid.UUID `db:"to_user_id"`
	Message        string    `db:"message"`
	SentimentMatch string    `db:"sentiment_match"`
	CreatedAt      time.Time `db:"created_at"`
	IsRead         bool      `db:"is_read"`
}

func (r row) toDomain() *domain.Whisper {
	return &domain.Whisper{
		ID:             r.ID,
		RecipientID:    r.ToUserID,
		Message:        r.Message,
		SentimentMatch: r.SentimentMatch,
		CreatedAt:      r.CreatedAt,
		IsRead:         r.IsRead,
	}
}

// Repo provides whisper persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new whisper repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a whisper.
func (r *Repo) Create(ctx context.Context, w *domain.Whisper) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(w.ID, w.RecipientID, w.Message, w.SentimentMatch, w.CreatedAt, w.IsRead).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "whisper", w.ID)
	}
	return nil
}

// ListByRecipient returns a page of whispers addressed to recipientID, newest
// first. With unreadOnly only unread whispers are returned.
func (r *Repo) ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]*domain.Whisper, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"to_user_id": recipientID})
	if unreadOnly {
		b = b.Where(sq.Eq{"is_read": false})
	}

	query, args, err := b.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "whispers of user", recipientID)
	}

	out := make([]*domain.Whisper, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// CountUnread returns how many whispers addressed to recipientID are unread.
func (r *Repo) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"to_user_id": recipientID}).
		Where(sq.Eq{"is_read": false}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "unread whispers of user", recipientID)
	}
	return n, nil
}

// MarkRead sets is_read on a whisper addressed to recipientID. A whisper that
// does not exist or belongs to someone else yields domain.ErrNotFound.
// Marking an already read whisper succeeds.
func (r *Repo) MarkRead(ctx context.Context, recipientID, whisperID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("is_read", true).
		Where(sq.Eq{"id": whisperID}).
		Where(sq.Eq{"to_user_id": recipientID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "whisper", whisperID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("whisper %s: %w", whisperID, domain.ErrNotFound)
	}
	return nil
}
