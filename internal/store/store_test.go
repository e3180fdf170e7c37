package store

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"sentivoice/internal/model"
)

func sampleReport() *model.SentimentReport {
	return &model.SentimentReport{
		Company: "Apple",
		Articles: []model.AnalyzedArticle{
			{Number: 1, Title: "T", URL: "https://example.com", Summary: "S", Sentiment: model.Positive, Keywords: []string{"kw"}},
		},
		Distribution: model.Distribution{Positive: 1},
		Comparative: model.ComparativeScore{
			Distribution:        model.Distribution{Positive: 1},
			CoverageDifferences: []model.Comparison{},
		},
		FinalSentiment: "apple की हाल की खबरें ज्यादातर Positive हैं।",
		Audio:          "[Play Hindi Speech](/get_tts/apple)",
	}
}

func TestCorpusWriteRead(t *testing.T) {
	s := New(t.TempDir())

	articles := []model.RawArticle{
		{Number: 1, Title: "First", URL: "https://example.com/1", Content: "One."},
		{Number: 3, Title: "Third", URL: "https://example.com/3", Content: "Three."},
	}

	path, err := s.WriteCorpus("apple", articles)
	assert.Equal(t, nil, err)
	assert.Equal(t, s.CorpusPath("apple"), path)

	got, err := s.ReadCorpus("apple")
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(got))
	assert.Equal(t, 1, got[0].Number)
	assert.Equal(t, 3, got[1].Number)
}

func TestWriteCorpus_Overwrites(t *testing.T) {
	s := New(t.TempDir())

	s.WriteCorpus("apple", []model.RawArticle{
		{Number: 1, Title: "Old", URL: "https://example.com/old", Content: "Old."},
		{Number: 2, Title: "Older", URL: "https://example.com/older", Content: "Older."},
	})
	s.WriteCorpus("apple", []model.RawArticle{
		{Number: 1, Title: "New", URL: "https://example.com/new", Content: "New."},
	})

	got, err := s.ReadCorpus("apple")
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(got))
	assert.Equal(t, "New", got[0].Title)
}

func TestReadCorpus_Missing(t *testing.T) {
	s := New(t.TempDir())

	_, err := s.ReadCorpus("apple")
	assert.Equal(t, true, errors.Is(err, ErrNoCorpus))
}

func TestReportWriteRead(t *testing.T) {
	s := New(t.TempDir())
	report := sampleReport()

	err := s.WriteReport("apple", report)
	assert.Equal(t, nil, err)

	got, err := s.ReadReport("apple")
	assert.Equal(t, nil, err)
	assert.Equal(t, report.Company, got.Company)
	assert.Equal(t, report.Distribution, got.Distribution)
	assert.Equal(t, report.FinalSentiment, got.FinalSentiment)
	assert.Equal(t, 1, len(got.Articles))
}

func TestWriteReport_KeepsHindiUnescaped(t *testing.T) {
	s := New(t.TempDir())

	err := s.WriteReport("apple", sampleReport())
	assert.Equal(t, nil, err)

	data, err := os.ReadFile(s.ReportPath("apple"))
	assert.Equal(t, nil, err)

	content := string(data)
	assert.Equal(t, true, strings.Contains(content, "की हाल की खबरें"))
	assert.Equal(t, false, strings.Contains(content, `\u`))
	// Report keys are the external contract.
	assert.Equal(t, true, strings.Contains(content, `"Article Number"`))
	assert.Equal(t, true, strings.Contains(content, `"Comparative Sentiment Score"`))
	assert.Equal(t, true, strings.Contains(content, `"Final Sentiment Analysis"`))
}

func TestReadReport_Missing(t *testing.T) {
	s := New(t.TempDir())

	_, err := s.ReadReport("apple")
	assert.Equal(t, true, errors.Is(err, ErrNoReport))
}

func TestAudioWriteExists(t *testing.T) {
	s := New(t.TempDir())

	path := s.AudioPath("apple", "abc123")
	assert.Equal(t, false, s.AudioExists(path))

	err := s.WriteAudio(path, []byte("ID3fake-mp3"))
	assert.Equal(t, nil, err)
	assert.Equal(t, true, s.AudioExists(path))

	data, err := os.ReadFile(path)
	assert.Equal(t, nil, err)
	assert.Equal(t, "ID3fake-mp3", string(data))
}

func TestAudioPath_KeyedByContent(t *testing.T) {
	s := New(t.TempDir())

	assert.NotEqual(t, s.AudioPath("apple", "aaa"), s.AudioPath("apple", "bbb"))
	assert.Equal(t, true, strings.HasSuffix(s.AudioPath("apple", "aaa"), "apple_sentiment_hindi_aaa.mp3"))
}
