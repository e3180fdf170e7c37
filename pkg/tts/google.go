package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	endpoint       = "https://translate.google.com/translate_tts"
	defaultTimeout = 30 * time.Second
	userAgent      = "Mozilla/5.0"
)

// LanguageHindi is the synthesis target for the sentiment narration.
const LanguageHindi = "hi"

// Client speaks text through the Google Translate TTS endpoint and returns
// MP3 bytes. Normal speaking rate only.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", lang)
	params.Set("ttsspeed", "1")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts fetch: unexpected status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tts read: %w", err)
	}

	if len(audio) == 0 {
		return nil, fmt.Errorf("tts read: empty audio response")
	}

	return audio, nil
}
