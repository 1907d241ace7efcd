// Package ai holds the keyword heuristics behind moderation, provider
// recommendation, trend analysis and dashboard insights. Nothing here is a
// trained model; every score is a weighted count over fixed Swedish word
// lists.
package ai

import (
	"strings"
	"unicode"
)

var (
	positiveWords = []string{"bra", "fantastisk", "utmärkt", "perfekt", "rekommenderar", "tack"}
	negativeWords = []string{"dålig", "fruktansvärd", "undvik", "problem", "fel", "hatar"}
)

// Sentiment scores text between 0 and 1. Neutral text scores 0.5 and every
// surplus positive or negative word moves the score by 0.1.
func Sentiment(text string) float64 {
	lower := strings.ToLower(text)
	pos := countContained(lower, positiveWords)
	neg := countContained(lower, negativeWords)

	switch {
	case pos > neg:
		return clamp(0.5+float64(pos-neg)*0.1, 0, 1)
	case neg > pos:
		return clamp(0.5-float64(neg-pos)*0.1, 0, 1)
	default:
		return 0.5
	}
}

// countContained counts the words of list found anywhere in lower. Matching is
// by substring, so "problem" also hits "problemet".
func countContained(lower string, list []string) int {
	n := 0
	for _, w := range list {
		if strings.Contains(lower, w) {
			n++
		}
	}

	return n
}

func contained(lower string, list []string) []string {
	hits := make([]string, 0)
	for _, w := range list {
		if strings.Contains(lower, w) {
			hits = append(hits, w)
		}
	}

	return hits
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
