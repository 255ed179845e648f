// Package thought implements the Thought repository using PostgreSQL.
package thought

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/solilop/solilop-backend/internal/adapter/postgres"
	"github.com/solilop/solilop-backend/internal/domain"
)

const table = "thoughts"

var columns = []string{"id", "user_id", "content", "sentiment", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Content   string    `db:"content"`
	Sentiment string    `db:"sentiment"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Thought {
	return &domain.Thought{
		ID:        r.ID,
		UserID:    r.UserID,
		Content:   r.Content,
		Sentiment: domain.Sentiment(r.Sentiment),
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides thought persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new thought repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a thought. Thoughts are never updated afterwards.
func (r *Repo) Create(ctx context.Context, t *domain.Thought) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(t.ID, t.UserID, t.Content, t.Sentiment.String(), t.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "thought", t.ID)
	}
	return nil
}

// ListByUser returns a page of the user's thoughts, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Thought, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "thoughts of user", userID)
	}

	out := make([]*domain.Thought, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// FindRecentAuthorsBySentiment returns up to limit distinct authors, other
// than excludeUserID, who posted a thought with the given sentiment strictly
// after since. The order is random.
func (r *Repo) FindRecentAuthorsBySentiment(
	ctx context.Context,
	sentiment domain.Sentiment,
	excludeUserID uuid.UUID,
	since time.Time,
	limit int,
) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Select("user_id").
		From(table).
		Where(sq.Eq{"sentiment": sentiment.String()}).
		Where(sq.NotEq{"user_id": excludeUserID}).
		Where(sq.Gt{"created_at": since}).
		GroupBy("user_id").
		OrderBy("random()").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, r.db, &ids, query, args...); err != nil {
		return nil, postgres.MapError(err, "candidate authors for", sentiment)
	}
	return ids, nil
}
