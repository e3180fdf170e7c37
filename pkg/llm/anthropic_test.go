package llm

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/go-playground/assert/v2"
)

func TestNewAnthropicClient(t *testing.T) {
	client := NewAnthropicClient("test-key")

	assert.NotEqual(t, nil, client.client)
	assert.Equal(t, anthropic.ModelClaudeHaiku4_5, client.model)
}
