package analyze

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

const sampleContent = `Apple announced the new Vision Pro headset today. The Vision Pro
headset ships with an improved display. Analysts expect strong headset sales this
quarter, though battery life remains a common complaint among early reviewers.`

func TestExtractKeywords_Limits(t *testing.T) {
	keywords := ExtractKeywords(sampleContent)

	assert.Equal(t, true, len(keywords) > 0)
	assert.Equal(t, true, len(keywords) <= 5)
	for _, k := range keywords {
		assert.Equal(t, true, len(strings.Fields(k)) <= 2)
		assert.NotEqual(t, "", k)
	}
}

func TestExtractKeywords_EmptyContent(t *testing.T) {
	keywords := ExtractKeywords("")

	assert.Equal(t, 0, len(keywords))

	// No candidates still serializes as an empty list, never null.
	data, err := json.Marshal(keywords)
	assert.Equal(t, nil, err)
	assert.Equal(t, "[]", string(data))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, float64(1), similarity("Vision Pro", "vision pro"))
	assert.Equal(t, float64(0), similarity("battery life", "display panel"))
	assert.Equal(t, true, similarity("vision pro", "vision") < 0.9)
}

func TestIsNearDuplicate(t *testing.T) {
	kept := []string{"vision pro", "battery life"}

	assert.Equal(t, true, isNearDuplicate("Vision Pro", kept))
	assert.Equal(t, false, isNearDuplicate("display panel", kept))
}
