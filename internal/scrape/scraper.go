package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"sentivoice/internal/model"
)

const (
	defaultUserAgent = "Mozilla/5.0"
	defaultDelay     = 2 * time.Second
	requestTimeout   = 10 * time.Second
	missingTitle     = "No title found"
)

// FetchResult is the per-URL outcome of a scrape batch. Number is the 1-based
// catalog position regardless of success.
type FetchResult struct {
	Number int
	URL    string
	Err    error
}

// BatchResult collects the retained articles and the per-URL outcomes, so
// callers can report actual counts instead of assuming every URL succeeded.
type BatchResult struct {
	Articles []model.RawArticle
	Results  []FetchResult
}

// Scraped is the number of URLs that produced an article record.
func (b BatchResult) Scraped() int {
	n := 0
	for _, r := range b.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

type Scraper struct {
	httpClient *http.Client
	userAgent  string
	delay      time.Duration
}

func New() *Scraper {
	return &Scraper{
		httpClient: &http.Client{Timeout: requestTimeout},
		userAgent:  defaultUserAgent,
		delay:      defaultDelay,
	}
}

// NewWithClient builds a scraper around an existing client, for configured
// timeouts and for tests that need a zero courtesy delay.
func NewWithClient(httpClient *http.Client, delay time.Duration) *Scraper {
	return &Scraper{
		httpClient: httpClient,
		userAgent:  defaultUserAgent,
		delay:      delay,
	}
}

// Scrape fetches each catalog URL in order, one at a time, pausing before
// every request. A failed URL is logged and skipped; it never aborts the
// batch. Article numbers are catalog positions, so failures leave gaps.
func (s *Scraper) Scrape(ctx context.Context, urls []string) BatchResult {
	var batch BatchResult

	for i, url := range urls {
		number := i + 1

		if s.delay > 0 {
			time.Sleep(s.delay)
		}

		article, err := s.fetchArticle(ctx, url)
		if err != nil {
			slog.Error("error scraping article", "url", url, "error", err)
			batch.Results = append(batch.Results, FetchResult{Number: number, URL: url, Err: err})
			continue
		}

		article.Number = number
		batch.Articles = append(batch.Articles, article)
		batch.Results = append(batch.Results, FetchResult{Number: number, URL: url})
		slog.Info("scraped article", "number", number, "title", article.Title)
	}

	return batch
}

func (s *Scraper) fetchArticle(ctx context.Context, url string) (model.RawArticle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.RawArticle{}, fmt.Errorf("scrape request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return model.RawArticle{}, fmt.Errorf("scrape fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.RawArticle{}, fmt.Errorf("scrape fetch: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return model.RawArticle{}, fmt.Errorf("scrape parse: %w", err)
	}

	title := missingTitle
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		title = strings.TrimSpace(h1.Text())
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		paragraphs = append(paragraphs, strings.TrimSpace(sel.Text()))
	})

	return model.RawArticle{
		URL:     url,
		Title:   title,
		Content: strings.Join(paragraphs, " "),
	}, nil
}
