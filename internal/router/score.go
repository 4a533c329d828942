package router

import (
	"strings"

	"github.com/mlanders/sextant/internal/registry"
)

// Signal weights for the ranking heuristic. The ordering (name over
// description over context) encodes decreasing confidence in each signal
// and is a behavioral contract; tests pin exact scores.
const (
	WeightName        = 10 // keyword found in the function name
	WeightDescription = 5  // keyword found in the description
	WeightContext     = 3  // name word found in the user's input text
)

// nameSeparators are the characters a function name is split on when
// matching against input text. Camel-case humps are deliberately not split.
const nameSeparators = "._-"

// scoreEntry computes the additive match score of one entry against the
// resolved keywords and optional input text. All matching is
// case-insensitive substring containment; 0 means no match.
func scoreEntry(entry registry.Entry, keywords []string, inputText string) int {
	name := strings.ToLower(entry.Function)
	description := strings.ToLower(entry.Description)
	input := strings.ToLower(inputText)

	score := 0
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(name, kw) {
			score += WeightName
		}
		if description != "" && strings.Contains(description, kw) {
			score += WeightDescription
		}
	}

	if input != "" {
		for _, word := range splitName(name) {
			if strings.Contains(input, word) {
				score += WeightContext
			}
		}
	}

	return score
}

// splitName breaks a (lowercased) function name into words on separator
// characters, dropping empties.
func splitName(name string) []string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return strings.ContainsRune(nameSeparators, r)
	})
	return parts
}
