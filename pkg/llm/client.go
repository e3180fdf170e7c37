package llm

import "context"

// Summarizer produces a short neutral summary of article text. Implementations
// must be deterministic: same input, same summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// summaryMaxTokens caps the generated summary length; the floor of roughly 30
// tokens is enforced by the prompt.
const summaryMaxTokens = 100

const summarySystemPrompt = `You are a news editor. Summarize the article text you are given.

Rules:
1. One plain-prose summary between 30 and 100 tokens
2. Neutral tone, keep the facts: numbers, names, dates
3. No preamble, no markdown, no quotes around the summary
4. Output the summary text only`
