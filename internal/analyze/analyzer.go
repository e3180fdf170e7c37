package analyze

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonreiter/govader"

	"sentivoice/internal/model"
	"sentivoice/pkg/llm"
)

// summaryInputRunes bounds the text sent to the summarizer. This is a cost
// and latency cap, not a correctness requirement.
const summaryInputRunes = 500

// Analyzer runs the per-article stage: summary, keywords and polarity. The
// summarizer and lexicon scorer are constructed once and shared read-only.
type Analyzer struct {
	summarizer llm.Summarizer
	vader      *govader.SentimentIntensityAnalyzer
}

func New(summarizer llm.Summarizer) *Analyzer {
	return &Analyzer{
		summarizer: summarizer,
		vader:      govader.NewSentimentIntensityAnalyzer(),
	}
}

// AnalyzeArticle summarizes one article, extracts keywords from the full
// content and classifies the polarity of the summary text.
func (a *Analyzer) AnalyzeArticle(ctx context.Context, article model.RawArticle) (model.AnalyzedArticle, error) {
	summary, err := a.summarizer.Summarize(ctx, truncateRunes(article.Content, summaryInputRunes))
	if err != nil {
		return model.AnalyzedArticle{}, fmt.Errorf("summarize article %d: %w", article.Number, err)
	}

	polarity := a.vader.PolarityScores(summary).Compound

	return model.AnalyzedArticle{
		Number:    article.Number,
		Title:     article.Title,
		URL:       article.URL,
		Summary:   summary,
		Sentiment: Classify(polarity),
		Keywords:  ExtractKeywords(article.Content),
	}, nil
}

// AnalyzeAll processes articles independently. A failed article is logged and
// skipped so one bad model call cannot discard the whole batch.
func (a *Analyzer) AnalyzeAll(ctx context.Context, articles []model.RawArticle) []model.AnalyzedArticle {
	var analyzed []model.AnalyzedArticle
	for _, article := range articles {
		result, err := a.AnalyzeArticle(ctx, article)
		if err != nil {
			slog.Error("error analyzing article", "article_number", article.Number, "error", err)
			continue
		}
		analyzed = append(analyzed, result)
	}
	return analyzed
}

// Process runs per-article analysis and folds the results into a report.
func (a *Analyzer) Process(ctx context.Context, company string, articles []model.RawArticle) *model.SentimentReport {
	return Aggregate(company, a.AnalyzeAll(ctx, articles))
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
