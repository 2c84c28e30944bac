package scraper

import "strings"

// MatchAny returns the first wanted keyword contained in the title,
// matching case-insensitively.
func MatchAny(title string, keywords []string) (string, bool) {
	lower := strings.ToLower(title)
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return keyword, true
		}
	}
	return "", false
}
