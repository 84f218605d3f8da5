package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '‑' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

// parseChoiceToken maps "2", "second" or "b" to a 1-based choice number.
func parseChoiceToken(token string) (int, bool) {
	token = strings.TrimSpace(strings.ToLower(token))
	if n, err := strconv.Atoi(token); err == nil && n > 0 {
		return n, true
	}
	switch token {
	case "first", "one", "a":
		return 1, true
	case "second", "two", "b":
		return 2, true
	case "third", "three", "c":
		return 3, true
	default:
		return 0, false
	}
}

func isFiller(token string) bool {
	switch token {
	case "a", "an", "the", "some", "to", "me", "my", "please", "for", "go":
		return true
	default:
		return false
	}
}

func stripFillers(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if isFiller(token) {
			continue
		}
		out = append(out, token)
	}
	return out
}
