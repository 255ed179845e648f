package domain

import (
	"time"

	"github.com/google/uuid"
)

// Whisper is an anonymous encouragement delivered to another user.
type Whisper struct {
	ID             uuid.UUID
	RecipientID    uuid.UUID
	Message        string
	SentimentMatch string
	CreatedAt      time.Time
	IsRead         bool
}

// SentimentMatch formats the "<source>-><target>" pair recorded on a whisper.
func SentimentMatch(source Sentiment) string {
	return source.String() + "->" + source.Complement().String()
}
