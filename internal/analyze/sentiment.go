package analyze

import "sentivoice/internal/model"

const negativeThreshold = -0.1

// Classify maps a polarity score in [-1,1] to a sentiment class. The cutoffs
// are asymmetric on purpose: anything above 0 is positive, but a score must
// fall below -0.1 before it counts as negative.
func Classify(polarity float64) model.Sentiment {
	switch {
	case polarity > 0:
		return model.Positive
	case polarity < negativeThreshold:
		return model.Negative
	default:
		return model.Neutral
	}
}
