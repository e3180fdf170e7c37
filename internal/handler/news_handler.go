package handler

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"sentivoice/internal/analyze"
	"sentivoice/internal/config"
	"sentivoice/internal/model"
	"sentivoice/internal/scrape"
	"sentivoice/internal/store"
	"sentivoice/pkg/tts"
)

type Scraper interface {
	Scrape(ctx context.Context, urls []string) scrape.BatchResult
}

type Processor interface {
	Process(ctx context.Context, company string, articles []model.RawArticle) *model.SentimentReport
}

type ReportStore interface {
	WriteCorpus(company string, articles []model.RawArticle) (string, error)
	ReadCorpus(company string) ([]model.RawArticle, error)
	WriteReport(company string, report *model.SentimentReport) error
	ReadReport(company string) (*model.SentimentReport, error)
	AudioPath(company, key string) string
	AudioExists(path string) bool
	WriteAudio(path string, audio []byte) error
}

type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

type NewsHandler struct {
	catalog   config.Catalog
	scraper   Scraper
	processor Processor
	store     ReportStore
	speech    SpeechSynthesizer
}

func NewNewsHandler(catalog config.Catalog, scraper Scraper, processor Processor, store ReportStore, speech SpeechSynthesizer) *NewsHandler {
	return &NewsHandler{
		catalog:   catalog,
		scraper:   scraper,
		processor: processor,
		store:     store,
		speech:    speech,
	}
}

// ScrapeNews runs the whole pipeline for one company: fetch, persist the
// corpus, read it back into articles, analyze and save the report.
func (h *NewsHandler) ScrapeNews(c *gin.Context) {
	company := strings.ToLower(c.Param("company"))

	urls, ok := h.catalog[company]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Company not found"})
		return
	}

	batch := h.scraper.Scrape(c.Request.Context(), urls)

	if _, err := h.store.WriteCorpus(company, batch.Articles); err != nil {
		slog.Error("error writing corpus", "company", company, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to save articles"})
		return
	}

	articles, err := h.store.ReadCorpus(company)
	if err != nil {
		slog.Error("error reading corpus", "company", company, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("No articles file found for %s!", company),
		})
		return
	}

	report := h.processor.Process(c.Request.Context(), company, articles)

	if err := h.store.WriteReport(company, report); err != nil {
		slog.Error("error writing report", "company", company, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to save report"})
		return
	}

	c.JSON(http.StatusOK, ScrapeResponse{
		Status:            "success",
		Company:           company,
		ArticlesScraped:   batch.Scraped(),
		ArticlesRequested: len(urls),
	})
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	company := strings.ToLower(c.Param("company"))

	report, err := h.store.ReadReport(company)
	if errors.Is(err, store.ErrNoReport) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("No sentiment report found for %s. Run /scrape_news/%s first.", company, company),
		})
		return
	}
	if err != nil {
		slog.Error("error reading report", "company", company, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetTTS serves the Hindi narration for a company's report, synthesizing it
// on first request. The cache key is derived from the spoken sentence, so an
// unchanged report never re-invokes synthesis and a changed one never plays
// stale audio.
func (h *NewsHandler) GetTTS(c *gin.Context) {
	company := strings.ToLower(c.Param("company"))

	report, err := h.store.ReadReport(company)
	if errors.Is(err, store.ErrNoReport) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("No sentiment report found for %s. Run /scrape_news/%s first.", company, company),
		})
		return
	}
	if err != nil {
		slog.Error("error reading report", "company", company, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read report"})
		return
	}

	sentence := analyze.SpokenSummary(company, report.Distribution)
	path := h.store.AudioPath(company, contentKey(sentence))

	if !h.store.AudioExists(path) {
		slog.Info("generating tts audio", "company", company)

		audio, err := h.speech.Synthesize(c.Request.Context(), sentence, tts.LanguageHindi)
		if err != nil {
			slog.Error("error synthesizing audio", "company", company, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Speech synthesis failed"})
			return
		}

		if err := h.store.WriteAudio(path, audio); err != nil {
			slog.Error("error saving audio", "company", company, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save audio"})
			return
		}
	}

	c.Header("Content-Disposition", "inline")
	c.Header("Content-Type", "audio/mpeg")
	c.File(path)
}

func (h *NewsHandler) GetCompanies(c *gin.Context) {
	companies := make([]string, 0, len(h.catalog))
	for company := range h.catalog {
		companies = append(companies, company)
	}
	sort.Strings(companies)

	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"companies": len(h.catalog),
	})
}

func contentKey(sentence string) string {
	sum := sha256.Sum256([]byte(sentence))
	return fmt.Sprintf("%x", sum)[:16]
}
