package analyze

import (
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/jonreiter/govader"

	"sentivoice/internal/model"
)

func TestClassify_Boundaries(t *testing.T) {
	assert.Equal(t, model.Neutral, Classify(0))
	assert.Equal(t, model.Neutral, Classify(-0.1))
	assert.Equal(t, model.Neutral, Classify(-0.05))
	assert.Equal(t, model.Negative, Classify(-0.1000001))
	assert.Equal(t, model.Negative, Classify(-1))
	assert.Equal(t, model.Positive, Classify(0.0001))
	assert.Equal(t, model.Positive, Classify(1))
}

func TestPolarityScorer_Direction(t *testing.T) {
	vader := govader.NewSentimentIntensityAnalyzer()

	positive := vader.PolarityScores("The launch was a wonderful, excellent success.").Compound
	negative := vader.PolarityScores("The launch was a terrible, disastrous failure.").Compound

	assert.Equal(t, true, positive > 0)
	assert.Equal(t, true, negative < -0.1)
	assert.Equal(t, model.Positive, Classify(positive))
	assert.Equal(t, model.Negative, Classify(negative))
}
