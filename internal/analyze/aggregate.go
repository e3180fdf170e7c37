package analyze

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"sentivoice/internal/model"
)

// Aggregate folds per-article results into the durable report shape: the
// sentiment tally, adjacent-pair comparisons and the final Hindi verdict.
func Aggregate(company string, articles []model.AnalyzedArticle) *model.SentimentReport {
	sorted := make([]model.AnalyzedArticle, len(articles))
	copy(sorted, articles)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Number < sorted[j].Number
	})

	var distribution model.Distribution
	for _, a := range sorted {
		distribution.Add(a.Sentiment)
	}

	return &model.SentimentReport{
		Company:      capitalize(company),
		Articles:     sorted,
		Distribution: distribution,
		Comparative: model.ComparativeScore{
			Distribution:        distribution,
			CoverageDifferences: buildComparisons(sorted),
		},
		FinalSentiment: Verdict(company, distribution.MostCommon()),
		Audio:          fmt.Sprintf("[Play Hindi Speech](/get_tts/%s)", company),
	}
}

// buildComparisons emits one statement per adjacent pair in article-number
// order, so N articles yield N-1 comparisons.
func buildComparisons(articles []model.AnalyzedArticle) []model.Comparison {
	comparisons := make([]model.Comparison, 0)
	for i := 0; i+1 < len(articles); i++ {
		a, b := articles[i], articles[i+1]
		comparisons = append(comparisons, model.Comparison{
			Comparison: fmt.Sprintf("Article %d discusses %s, while Article %d focuses on %s.",
				a.Number, strings.Join(a.Keywords, ", "), b.Number, strings.Join(b.Keywords, ", ")),
			Impact: fmt.Sprintf("Article %d may impact %s market trends, while Article %d could affect %s consumer perceptions.",
				a.Number, a.Sentiment, b.Number, b.Sentiment),
		})
	}
	return comparisons
}

// Verdict is the report's closing sentence, in Hindi, naming the company and
// its dominant sentiment.
func Verdict(company string, sentiment model.Sentiment) string {
	return fmt.Sprintf("%s की हाल की खबरें ज्यादातर %s हैं।", company, sentiment)
}

// SpokenSummary is the sentence handed to speech synthesis: the verdict
// followed by the three raw counts.
func SpokenSummary(company string, d model.Distribution) string {
	return fmt.Sprintf("%s कुल %d सकारात्मक, %d नकारात्मक, और %d तटस्थ लेख मिले।",
		Verdict(company, d.MostCommon()), d.Positive, d.Negative, d.Neutral)
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
