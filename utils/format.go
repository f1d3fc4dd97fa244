package utils

import "strings"

// FormatListString turns a backend pseudo-list string like "['a', 'b', 'c']"
// into bulleted display text. Blank input yields "". Malformed input fails to
// fully strip and is rendered best-effort as a single bullet.
func FormatListString(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	s := trimSurrounding(input, "[", "]")
	s = trimSurrounding(s, "'", "'")

	parts := strings.Split(s, "', '")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	joined := strings.Join(parts, "\n• ")
	if strings.TrimSpace(joined) == "" {
		return ""
	}
	return "• " + joined
}

// trimSurrounding removes prefix and suffix only when both are present.
func trimSurrounding(s, prefix, suffix string) string {
	if len(s) >= len(prefix)+len(suffix) && strings.HasPrefix(s, prefix) && strings.HasSuffix(s, suffix) {
		return s[len(prefix) : len(s)-len(suffix)]
	}
	return s
}
