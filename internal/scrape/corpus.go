package scrape

import (
	"fmt"
	"strconv"
	"strings"

	"sentivoice/internal/model"
)

var (
	articleDelimiter = strings.Repeat("=", 80)
	fieldSeparator   = strings.Repeat("-", 50)
)

// FormatCorpus renders articles in the flat text layout the segmenter reads
// back. The layout is a file contract: parsing a formatted corpus must return
// the same records.
func FormatCorpus(articles []model.RawArticle) string {
	var sb strings.Builder
	for _, a := range articles {
		sb.WriteString("\n" + articleDelimiter + "\n")
		sb.WriteString(fmt.Sprintf("Article Number: %d\n", a.Number))
		sb.WriteString(fmt.Sprintf("TITLE: %s\n", a.Title))
		sb.WriteString(fmt.Sprintf("URL: %s\n", a.URL))
		sb.WriteString(fieldSeparator + "\n")
		sb.WriteString("CONTENT:\n")
		sb.WriteString(a.Content)
		sb.WriteString("\n" + articleDelimiter + "\n")
	}
	return sb.String()
}

// ParseCorpus splits a corpus back into article records. Segments with fewer
// than five lines or an unparsable article number are skipped, not errors.
func ParseCorpus(content string) []model.RawArticle {
	var articles []model.RawArticle

	for _, segment := range strings.Split(strings.TrimSpace(content), articleDelimiter) {
		lines := strings.Split(strings.TrimSpace(segment), "\n")
		if len(lines) < 5 {
			continue
		}

		number, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(lines[0], "Article Number:")))
		if err != nil {
			continue
		}

		contentLines := lines[4:]
		if contentLines[0] == "CONTENT:" {
			contentLines = contentLines[1:]
		}

		articles = append(articles, model.RawArticle{
			Number:  number,
			Title:   strings.TrimSpace(strings.TrimPrefix(lines[1], "TITLE:")),
			URL:     strings.TrimSpace(strings.TrimPrefix(lines[2], "URL:")),
			Content: strings.TrimSpace(strings.Join(contentLines, "\n")),
		})
	}

	return articles
}
