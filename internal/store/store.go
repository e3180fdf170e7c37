package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"sentivoice/internal/model"
	"sentivoice/internal/scrape"
)

var (
	ErrNoCorpus = errors.New("no articles file found")
	ErrNoReport = errors.New("no sentiment report found")
)

// FileStore keeps every artifact for a company under
// {baseDir}/{company}_articles: the corpus text, the report JSON and the
// narrated audio. Writes replace whole files; there is no merging.
type FileStore struct {
	baseDir string
}

func New(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

func (s *FileStore) companyDir(company string) string {
	return filepath.Join(s.baseDir, company+"_articles")
}

func (s *FileStore) CorpusPath(company string) string {
	return filepath.Join(s.companyDir(company), company+"_articles.txt")
}

func (s *FileStore) ReportPath(company string) string {
	return filepath.Join(s.companyDir(company), company+"_articles_sentiment.json")
}

// AudioPath keys the audio file by a content hash of the spoken sentence, so
// a changed report never serves stale speech.
func (s *FileStore) AudioPath(company, key string) string {
	return filepath.Join(s.companyDir(company), fmt.Sprintf("%s_sentiment_hindi_%s.mp3", company, key))
}

// WriteCorpus replaces any previous corpus for the company and returns the
// corpus file path.
func (s *FileStore) WriteCorpus(company string, articles []model.RawArticle) (string, error) {
	if err := os.MkdirAll(s.companyDir(company), 0o755); err != nil {
		return "", fmt.Errorf("create company dir: %w", err)
	}

	path := s.CorpusPath(company)
	if err := os.WriteFile(path, []byte(scrape.FormatCorpus(articles)), 0o644); err != nil {
		return "", fmt.Errorf("write corpus: %w", err)
	}

	return path, nil
}

func (s *FileStore) ReadCorpus(company string) ([]model.RawArticle, error) {
	data, err := os.ReadFile(s.CorpusPath(company))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoCorpus
	}
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	return scrape.ParseCorpus(string(data)), nil
}

// WriteReport replaces any previous report. HTML escaping stays off so the
// Hindi verdict is stored as readable text.
func (s *FileStore) WriteReport(company string, report *model.SentimentReport) error {
	if err := os.MkdirAll(s.companyDir(company), 0o755); err != nil {
		return fmt.Errorf("create company dir: %w", err)
	}

	file, err := os.Create(s.ReportPath(company))
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return nil
}

func (s *FileStore) ReadReport(company string) (*model.SentimentReport, error) {
	data, err := os.ReadFile(s.ReportPath(company))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoReport
	}
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	var report model.SentimentReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}

	return &report, nil
}

func (s *FileStore) AudioExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *FileStore) WriteAudio(path string, audio []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create company dir: %w", err)
	}

	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return fmt.Errorf("write audio: %w", err)
	}

	return nil
}
