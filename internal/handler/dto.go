package handler

// ScrapeResponse reports both the catalog size and the count actually
// retained, so partial failures are visible to the caller.
type ScrapeResponse struct {
	Status            string `json:"status"`
	Company           string `json:"company"`
	ArticlesScraped   int    `json:"articles_scraped"`
	ArticlesRequested int    `json:"articles_requested"`
}
