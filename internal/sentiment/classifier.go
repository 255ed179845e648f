// Package sentiment assigns a three-way mood label to free text.
package sentiment

import (
	"strings"

	"github.com/solilop/solilop-backend/internal/domain"
)

var positiveWords = []string{
	"happy", "good", "great", "love", "excited", "wonderful", "amazing",
	"fantastic", "excellent", "joy", "grateful", "blessed", "awesome",
	"beautiful", "perfect", "proud", "success", "win", "best", "smile",
}

var negativeWords = []string{
	"sad", "bad", "tired", "stressed", "difficult", "angry", "frustrated",
	"disappointed", "hurt", "pain", "worry", "anxious", "depressed",
	"lonely", "scared", "fail", "lost", "hard", "worst", "hate",
}

// Classifier is a keyword-based classifier. The zero value is not usable;
// create one with NewClassifier.
type Classifier struct {
	positive []string
	negative []string
}

// NewClassifier returns a Classifier using the built-in keyword lists.
func NewClassifier() *Classifier {
	return &Classifier{positive: positiveWords, negative: negativeWords}
}

// Classify labels text by counting whitespace-separated tokens that contain
// a positive or a negative keyword. A token may count towards both sides.
// Ties, including text with no keywords at all, are neutral.
func (c *Classifier) Classify(text string) domain.Sentiment {
	var pos, neg int
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		if containsAny(tok, c.positive) {
			pos++
		}
		if containsAny(tok, c.negative) {
			neg++
		}
	}

	switch {
	case pos > neg:
		return domain.SentimentPositive
	case neg > pos:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

func containsAny(tok string, words []string) bool {
	for _, w := range words {
		if strings.Contains(tok, w) {
			return true
		}
	}
	return false
}
