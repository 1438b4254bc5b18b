package generators

import (
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

// lines splits notes on newlines and returns the trimmed, non-empty lines.
func lines(notes string) []string {
	var out []string
	for _, line := range strings.Split(notes, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate shortens s to at most n characters, appending "..." when it cut anything.
func Truncate(s string, n int) string {
	if runeLen(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + ellipsis
}

// Preview returns the first n characters of s followed by "..." regardless of length.
func Preview(s string, n int) string {
	if runeLen(s) > n {
		s = string([]rune(s)[:n])
	}
	return s + ellipsis
}

func rule() string {
	return strings.Repeat("=", 50)
}
