package posts

import (
	"strings"
)

// Slugify derives a URL-safe identifier from a post title.
// The result is lowercase, contains only [a-z0-9-], and collapses any run
// of other characters into a single hyphen. A title made entirely of
// stripped characters yields "" - callers treat that as a validation error.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingSep := false
	for _, r := range strings.ToLower(title) {
		switch {
		// ASCII digits only; Unicode digit classes would leak
		// non-ASCII runes into the slug
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			// Whitespace, punctuation, and anything non-ASCII all act
			// as separators; runs collapse into one hyphen.
			pendingSep = true
		}
	}

	return b.String()
}
