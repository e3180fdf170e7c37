package analyze

import (
	"sort"
	"strings"

	rake "github.com/afjoseph/RAKE.Go"
)

const (
	maxKeywords     = 5
	maxKeywordWords = 2
	dedupSimilarity = 0.9
)

// ExtractKeywords pulls up to five representative phrases from the full
// article content. Candidates longer than two words are dropped, as are
// near-duplicates of an already kept phrase.
func ExtractKeywords(content string) []string {
	candidates := rake.RunRake(content)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Value > candidates[j].Value
	})

	keywords := make([]string, 0, maxKeywords)
	for _, c := range candidates {
		phrase := strings.TrimSpace(c.Key)
		if phrase == "" || len(strings.Fields(phrase)) > maxKeywordWords {
			continue
		}
		if isNearDuplicate(phrase, keywords) {
			continue
		}
		keywords = append(keywords, phrase)
		if len(keywords) == maxKeywords {
			break
		}
	}

	return keywords
}

func isNearDuplicate(phrase string, kept []string) bool {
	for _, k := range kept {
		if similarity(phrase, k) >= dedupSimilarity {
			return true
		}
	}
	return false
}

// similarity is a case-insensitive Jaccard index over word tokens.
func similarity(a, b string) float64 {
	aSet := tokenSet(a)
	bSet := tokenSet(b)
	if len(aSet) == 0 || len(bSet) == 0 {
		return 0
	}

	common := 0
	for t := range aSet {
		if bSet[t] {
			common++
		}
	}

	union := len(aSet) + len(bSet) - common
	return float64(common) / float64(union)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range strings.Fields(strings.ToLower(s)) {
		set[t] = true
	}
	return set
}
