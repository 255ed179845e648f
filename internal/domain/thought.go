package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sentiment is the mood label assigned to a thought.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

func (s Sentiment) String() string { return string(s) }

func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// Complement returns the sentiment whose authors receive whispers triggered
// by s. Positive and negative swap; neutral maps to itself. Unknown labels
// are treated as neutral.
func (s Sentiment) Complement() Sentiment {
	switch s {
	case SentimentPositive:
		return SentimentNegative
	case SentimentNegative:
		return SentimentPositive
	default:
		return SentimentNeutral
	}
}

// Thought is an immutable mood entry written by a user.
type Thought struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Content   string
	Sentiment Sentiment
	CreatedAt time.Time
}
