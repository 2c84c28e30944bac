package helpers

import (
	"errors"
	"strings"
)

func GetSplitPart(target string, separate string, index int) (string, error) {
	parts := strings.Split(target, separate)
	if index >= len(parts) {
		return "", errors.New("index out of range")
	}
	return parts[index], nil
}

// LastSplitPart returns the last non-empty segment of target split by separate
func LastSplitPart(target string, separate string) string {
	parts := strings.Split(target, separate)
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}

// CleanString strips newline and tab characters and trims surrounding whitespace
func CleanString(s string) string {
	s = strings.ReplaceAll(s, "\t", "")
	s = strings.ReplaceAll(s, "\n", "")
	return strings.TrimSpace(s)
}
