// Package sanitizer normalizes user-supplied free text before it reaches
// validation, storage, or the language-model prompts.
package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims the string and collapses any internal whitespace
// runs to a single space. Control characters are dropped.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		case unicode.IsControl(r):
			// skip
		default:
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

// NormalizeFreeText prepares conversational input: whitespace-normalized and
// capped at maxLen runes so a single message cannot blow up a prompt.
func NormalizeFreeText(s string, maxLen int) string {
	s = TrimAndNormalize(s)
	if maxLen > 0 {
		runes := []rune(s)
		if len(runes) > maxLen {
			s = string(runes[:maxLen])
		}
	}
	return s
}

// NormalizeEquipment lowercases a single equipment label.
func NormalizeEquipment(s string) string {
	return strings.ToLower(TrimAndNormalize(s))
}

// NormalizeEquipmentList applies NormalizeEquipment to each entry and drops
// empties and duplicates, preserving first-seen order.
func NormalizeEquipmentList(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		norm := NormalizeEquipment(item)
		if norm == "" {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}
	return out
}
