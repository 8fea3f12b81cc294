package services

import "strings"

// Slugify derives the stored organization slug from a submitted token.
// The result is lowercase and restricted to [a-z0-9_.-]: whitespace runs
// become single underscores, every other unsafe rune is dropped, and
// leading/trailing separators are trimmed. "Test U!" becomes "test_u".
func Slugify(input string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	joined := strings.Join(fields, "_")

	var b strings.Builder
	b.Grow(len(joined))
	for _, r := range joined {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '_', r == '.', r == '-':
			b.WriteRune(r)
		}
	}

	return strings.Trim(b.String(), "._-")
}
