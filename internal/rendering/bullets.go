package rendering

import "strings"

// bulletGlyphs are stripped from the start of a line along with the whitespace after them.
// ASCII markers only count when followed by a space, so "-10% cost" survives.
var bulletGlyphs = []string{"•", "·", "▪", "◦", "‣", "●"}

// SplitBullets splits a description into one item per non-blank line with any leading bullet glyph removed
func SplitBullets(description string) []string {
	lines := strings.Split(description, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		item := stripBullet(strings.TrimSpace(line))
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func stripBullet(line string) string {
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(line, g) {
			return strings.TrimSpace(strings.TrimPrefix(line, g))
		}
	}
	for _, g := range []string{"- ", "* "} {
		if strings.HasPrefix(line, g) {
			return strings.TrimSpace(line[len(g):])
		}
	}
	return line
}
