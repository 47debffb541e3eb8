package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Single reports whether text is exactly one grapheme cluster.
func Single(text string) bool {
	if text == "" {
		return false
	}
	_, rest, _, _ := uniseg.FirstGraphemeClusterInString(text, -1)
	return rest == ""
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// LastIndex returns the index of the right-most run of clusters in haystack
// equal to needle, or -1. An empty needle matches at len(haystack).
func LastIndex(haystack, needle []string) int {
	if len(needle) == 0 {
		return len(haystack)
	}
	for start := len(haystack) - len(needle); start >= 0; start-- {
		if equalAt(haystack, needle, start) {
			return start
		}
	}
	return -1
}

func equalAt(haystack, needle []string, start int) bool {
	for i, c := range needle {
		if haystack[start+i] != c {
			return false
		}
	}
	return true
}
