package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solilop/solilop-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := domain.User{
		ID:           uuid.New(),
		Email:        "lop-" + uniqueSuffix() + "@example.com",
		PasswordHash: "$2a$04$not-a-real-hash",
		LopCharacter: domain.LopCurious,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, lop_character, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.PasswordHash, string(user.LopCharacter), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedThought inserts a thought for userID with an explicit timestamp.
func SeedThought(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, s domain.Sentiment, createdAt time.Time) domain.Thought {
	t.Helper()

	th := domain.Thought{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   "seeded " + uniqueSuffix(),
		Sentiment: s,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO thoughts (id, user_id, content, sentiment, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		th.ID, th.UserID, th.Content, string(th.Sentiment), th.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedThought: %v", err)
	}

	return th
}
