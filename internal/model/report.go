package model

// Sentiment is the polarity class assigned to an article.
type Sentiment string

const (
	Positive Sentiment = "Positive"
	Negative Sentiment = "Negative"
	Neutral  Sentiment = "Neutral"
)

// RawArticle is one fetched article before analysis. Number is the 1-based
// position in the company's URL catalog, so failed fetches leave gaps.
type RawArticle struct {
	Number  int
	Title   string
	URL     string
	Content string
}

// AnalyzedArticle carries the per-article analysis results. The JSON keys are
// the report file contract and must not change.
type AnalyzedArticle struct {
	Number    int       `json:"Article Number"`
	Title     string    `json:"Title"`
	URL       string    `json:"URL"`
	Summary   string    `json:"Summary"`
	Sentiment Sentiment `json:"Sentiment"`
	Keywords  []string  `json:"Keywords"`
}

// Distribution counts articles per sentiment class. The sum of the three
// counts always equals the number of analyzed articles.
type Distribution struct {
	Positive int `json:"Positive"`
	Negative int `json:"Negative"`
	Neutral  int `json:"Neutral"`
}

func (d *Distribution) Add(s Sentiment) {
	switch s {
	case Positive:
		d.Positive++
	case Negative:
		d.Negative++
	default:
		d.Neutral++
	}
}

func (d Distribution) Total() int {
	return d.Positive + d.Negative + d.Neutral
}

// MostCommon returns the dominant class. Ties resolve to the first maximum in
// Positive, Negative, Neutral order.
func (d Distribution) MostCommon() Sentiment {
	most := Positive
	best := d.Positive
	if d.Negative > best {
		most = Negative
		best = d.Negative
	}
	if d.Neutral > best {
		most = Neutral
	}
	return most
}

type Comparison struct {
	Comparison string `json:"Comparison"`
	Impact     string `json:"Impact"`
}

type ComparativeScore struct {
	Distribution        Distribution `json:"Sentiment Distribution"`
	CoverageDifferences []Comparison `json:"Coverage Differences"`
}

// SentimentReport is the durable aggregate written once per company run.
type SentimentReport struct {
	Company        string            `json:"Company"`
	Articles       []AnalyzedArticle `json:"Articles"`
	Distribution   Distribution      `json:"Sentiment Distribution"`
	Comparative    ComparativeScore  `json:"Comparative Sentiment Score"`
	FinalSentiment string            `json:"Final Sentiment Analysis"`
	Audio          string            `json:"Audio"`
}
