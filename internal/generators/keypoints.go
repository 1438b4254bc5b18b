package generators

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/julianstephens/campusbuddy/internal/constants"
)

// FallbackKeyPoints is returned when the notes yield fewer than five key points.
var FallbackKeyPoints = []string{
	"Review the main definitions and terminology",
	"Understand the underlying principles",
	"Practice application-based problems",
	"Create mind maps for better retention",
	"Focus on exam-relevant topics",
}

// KeyPoints extracts up to ten key points from notes, in their original order.
//
// A line longer than 15 characters qualifies when it contains a colon, starts
// with a bullet ("-" or "•", stripped along with following whitespace), or is
// between 20 and 150 characters long (exclusive).
func KeyPoints(notes string) []string {
	var points []string
	for _, line := range lines(notes) {
		if runeLen(line) <= constants.KeyPointMinLineLength {
			continue
		}
		switch {
		case strings.Contains(line, ":") || isBullet(line):
			points = append(points, stripBullet(line))
		case runeLen(line) > constants.KeyPointMinLength && runeLen(line) < constants.KeyPointMaxLength:
			points = append(points, line)
		}
	}

	if len(points) < constants.KeyPointMinCount {
		return append([]string(nil), FallbackKeyPoints...)
	}
	if len(points) > constants.KeyPointMaxCount {
		points = points[:constants.KeyPointMaxCount]
	}
	return points
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•")
}

func stripBullet(line string) string {
	if !isBullet(line) {
		return line
	}
	if strings.HasPrefix(line, "-") {
		line = strings.TrimPrefix(line, "-")
	} else {
		line = strings.TrimPrefix(line, "•")
	}
	return strings.TrimLeftFunc(line, unicode.IsSpace)
}

// FormatKeyPoints renders key points as a numbered plain-text list.
func FormatKeyPoints(points []string) string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = fmt.Sprintf("%d. %s", i+1, p)
	}
	return strings.Join(out, "\n")
}
