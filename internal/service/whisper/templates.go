package whisper

import "github.com/solilop/solilop-backend/internal/domain"

// templates holds the encouragement messages keyed by the sentiment of the
// thought that triggered the whisper. Never mutated after init.
var templates = map[domain.Sentiment][]string{
	domain.SentimentPositive: {
		"Someone out there is feeling great and wants you to know you're not alone! 🌟",
		"A fellow soul is celebrating life and sending you good vibes!",
		"Someone's joy is overflowing and they want to share it with you!",
		"Another person is having a wonderful day and hopes yours gets better too!",
	},
	domain.SentimentNegative: {
		"Someone else is going through a tough time too. You're not alone in this.",
		"Another soul understands your struggle and is sending you strength.",
		"Someone who's also feeling down wants you to know it will get better.",
		"A fellow human facing challenges is thinking of you. We're in this together.",
	},
	domain.SentimentNeutral: {
		"Someone is thinking of you and hoping you have a peaceful day.",
		"Another person wants you to know you matter.",
		"Someone out there appreciates you just for being you.",
		"A fellow traveler on life's journey sends you calm thoughts.",
	},
}

// Templates returns a copy of the message variants for a source sentiment.
// Unknown sentiments fall back to the neutral set.
func Templates(source domain.Sentiment) []string {
	msgs, ok := templates[source]
	if !ok {
		msgs = templates[domain.SentimentNeutral]
	}
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

// Message picks one template for the source sentiment using p.
func Message(source domain.Sentiment, p Picker) string {
	msgs, ok := templates[source]
	if !ok {
		msgs = templates[domain.SentimentNeutral]
	}
	return msgs[p.IntN(len(msgs))]
}
