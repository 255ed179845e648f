package whisper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sony/gobreaker"

	"github.com/solilop/solilop-backend/internal/config"
	"github.com/solilop/solilop-backend/internal/domain"
)

// Delivery outcomes reported to the recorder.
const (
	OutcomeDelivered    = "delivered"
	OutcomeNoCandidates = "no_candidates"
	OutcomeFailed       = "failed"
	OutcomeSkipped      = "skipped"
)

type candidateFinder interface {
	FindRecentAuthorsBySentiment(ctx context.Context, sentiment domain.Sentiment, excludeUserID uuid.UUID, since time.Time, limit int) ([]uuid.UUID, error)
}

type whisperWriter interface {
	Create(ctx context.Context, w *domain.Whisper) error
}

type deliveryRecorder interface {
	RecordDelivery(outcome string)
}

// Matcher delivers an anonymous whisper to a recent author of the
// complementary sentiment. Delivery is best-effort: Match never returns an
// error and never panics on store failures.
type Matcher struct {
	log      *slog.Logger
	thoughts candidateFinder
	whispers whisperWriter
	clock    clockwork.Clock
	picker   Picker
	recorder deliveryRecorder
	breaker  *gobreaker.CircuitBreaker
	window   time.Duration
	limit    int
}

// NewMatcher creates a Matcher. recorder may be nil.
func NewMatcher(
	logger *slog.Logger,
	thoughts candidateFinder,
	whispers whisperWriter,
	clock clockwork.Clock,
	picker Picker,
	recorder deliveryRecorder,
	cfg config.WhisperConfig,
) *Matcher {
	log := logger.With("service", "whisper_matcher")

	if recorder == nil {
		recorder = nopRecorder{}
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "whisper_delivery",
		Timeout: cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		IsSuccessful: func(err error) bool {
			// A client hanging up is not a store failure.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Matcher{
		log:      log,
		thoughts: thoughts,
		whispers: whispers,
		clock:    clock,
		picker:   picker,
		recorder: recorder,
		breaker:  breaker,
		window:   cfg.Window,
		limit:    cfg.CandidateLimit,
	}
}

// Match looks for a recipient for a thought with the given sentiment written
// by sourceUserID and persists one whisper for them. It returns the created
// whisper, or nil when nobody was eligible or delivery failed. Failures are
// logged, never returned.
func (m *Matcher) Match(ctx context.Context, sourceUserID uuid.UUID, source domain.Sentiment) *domain.Whisper {
	now := m.clock.Now()

	res, err := m.breaker.Execute(func() (any, error) {
		return m.deliver(ctx, sourceUserID, source, now)
	})
	if err != nil {
		attrs := []any{
			slog.String("source_user_id", sourceUserID.String()),
			slog.String("sentiment", source.String()),
			slog.Time("at", now),
			slog.String("error", err.Error()),
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			m.recorder.RecordDelivery(OutcomeSkipped)
			m.log.WarnContext(ctx, "whisper delivery skipped", attrs...)
			return nil
		}
		m.recorder.RecordDelivery(OutcomeFailed)
		m.log.ErrorContext(ctx, "whisper delivery failed", attrs...)
		return nil
	}

	w, _ := res.(*domain.Whisper)
	if w == nil {
		m.recorder.RecordDelivery(OutcomeNoCandidates)
		m.log.DebugContext(ctx, "no whisper candidates",
			slog.String("source_user_id", sourceUserID.String()),
			slog.String("sentiment", source.String()),
		)
		return nil
	}

	m.recorder.RecordDelivery(OutcomeDelivered)
	m.log.InfoContext(ctx, "whisper delivered",
		slog.String("whisper_id", w.ID.String()),
		slog.String("sentiment_match", w.SentimentMatch),
	)
	return w
}

func (m *Matcher) deliver(ctx context.Context, sourceUserID uuid.UUID, source domain.Sentiment, now time.Time) (*domain.Whisper, error) {
	target := source.Complement()

	found, err := m.thoughts.FindRecentAuthorsBySentiment(ctx, target, sourceUserID, now.Add(-m.window), m.limit)
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}

	pool := make([]uuid.UUID, 0, len(found))
	for _, id := range found {
		if id != sourceUserID && id != uuid.Nil {
			pool = append(pool, id)
		}
	}
	if len(pool) > m.limit {
		pool = pool[:m.limit]
	}
	if len(pool) == 0 {
		return nil, nil
	}

	w := &domain.Whisper{
		ID:             uuid.New(),
		RecipientID:    pool[m.picker.IntN(len(pool))],
		Message:        Message(source, m.picker),
		SentimentMatch: domain.SentimentMatch(source),
		CreatedAt:      now,
		IsRead:         false,
	}
	if err := m.whispers.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("insert whisper: %w", err)
	}

	return w, nil
}

type nopRecorder struct{}

func (nopRecorder) RecordDelivery(string) {}
