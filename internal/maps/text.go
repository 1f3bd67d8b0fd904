package maps

import (
	"fmt"
	"html"
	"math"
	"regexp"
	"strings"
	"time"
)

var (
	blockTag   = regexp.MustCompile(`(?i)<(div|br|p)\b[^>]*>`)
	anyTag     = regexp.MustCompile(`<[^>]+>`)
	whitespace = regexp.MustCompile(`\s+`)
)

// stripMarkup turns a directions html_instructions value into plain text.
func stripMarkup(s string) string {
	s = blockTag.ReplaceAllString(s, " ")
	s = anyTag.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// humanizeDuration renders d the way the Directions API text fields do,
// e.g. "1 min", "1 hour 5 mins", "2 days 3 hours".
func humanizeDuration(d time.Duration) string {
	mins := int(math.Round(d.Minutes()))
	if mins < 1 {
		mins = 1
	}
	days := mins / (24 * 60)
	mins %= 24 * 60
	hours := mins / 60
	mins %= 60

	var parts []string
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if mins > 0 && days == 0 {
		parts = append(parts, plural(mins, "min"))
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
