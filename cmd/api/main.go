package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sentivoice/internal/analyze"
	"sentivoice/internal/config"
	"sentivoice/internal/handler"
	"sentivoice/internal/scrape"
	"sentivoice/internal/store"
	"sentivoice/pkg/llm"
	"sentivoice/pkg/tts"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	catalog, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("error loading company catalog: %v", err)
	}

	var summarizer llm.Summarizer
	switch cfg.SummaryProvider {
	case "anthropic":
		summarizer = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	default:
		summarizer = llm.NewOpenAIClient(cfg.OpenAIAPIKey)
	}

	fileStore := store.New(cfg.DataDir)
	scraper := scrape.NewWithClient(&http.Client{Timeout: cfg.RequestTimeout}, cfg.FetchDelay)
	analyzer := analyze.New(summarizer)
	speech := tts.NewClient()

	newsHandler := handler.NewNewsHandler(catalog, scraper, analyzer, fileStore, speech)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/scrape_news/:company", newsHandler.ScrapeNews)
	r.GET("/get_news/:company", newsHandler.GetNews)
	r.GET("/get_tts/:company", newsHandler.GetTTS)
	r.GET("/companies", newsHandler.GetCompanies)
	r.GET("/health", newsHandler.GetHealth)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
