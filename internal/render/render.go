package render

import (
	"fmt"
	"strings"
)

// bulletDelimiter separates the segments of a stored summary string.
const bulletDelimiter = "• "

// maxCondensedTitleLen caps bullet titles in condensed share text.
const maxCondensedTitleLen = 60

// Point is one parsed bullet segment of a summary.
type Point struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ParseSummary splits a bullet-delimited summary into ordered points. Each
// segment is split on its first colon into title and body; a segment without
// a colon becomes a title-only point. Bold markers are stripped from titles.
func ParseSummary(summary string) []Point {
	var points []Point
	for _, segment := range strings.Split(summary, bulletDelimiter) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		title := segment
		body := ""
		if idx := strings.Index(segment, ":"); idx >= 0 {
			title = segment[:idx]
			body = strings.TrimSpace(segment[idx+1:])
		}
		title = strings.TrimSpace(strings.ReplaceAll(title, "**", ""))

		points = append(points, Point{
			Index: len(points) + 1,
			Title: title,
			Body:  body,
		})
	}
	return points
}

// ShareText renders a summary as shareable plain text. Full mode numbers each
// complete segment; condensed mode keeps title-only bullets truncated to 60
// characters. Both embed the short URL and the original article URL.
func ShareText(title, summary, shortURL, originalURL string, condensed bool) string {
	var lines []string
	for i, segment := range splitSegments(summary) {
		clean := strings.TrimSpace(strings.ReplaceAll(segment, "**", ""))
		if condensed {
			// A segment without a colon is all title
			pointTitle := clean
			if idx := strings.Index(clean, ":"); idx >= 0 {
				pointTitle = strings.TrimSpace(clean[:idx])
			}
			if runes := []rune(pointTitle); len(runes) > maxCondensedTitleLen {
				pointTitle = string(runes[:maxCondensedTitleLen]) + "..."
			}
			lines = append(lines, "• "+pointTitle)
		} else {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, clean))
		}
	}

	separator := "\n\n"
	header := "📝 Key Takeaways:"
	if condensed {
		separator = "\n"
		header = "📝 Quick Summary:"
	}

	if title == "" {
		title = "Article Summary"
	}

	return fmt.Sprintf(`📄 %s

%s

%s

🔗 Read full summary: %s
📖 Read original article: %s

---
Powered by LinkSense AI ✨`, title, header, strings.Join(lines, separator), shortURL, originalURL)
}

func splitSegments(summary string) []string {
	var segments []string
	for _, segment := range strings.Split(summary, bulletDelimiter) {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}
