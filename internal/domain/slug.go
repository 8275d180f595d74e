package domain

import (
	"strings"
)

// maxSlugLength caps generated slugs so storage keys stay bounded.
const maxSlugLength = 100

// Slugify converts a topic string into a lowercase, hyphenated,
// URL-safe identifier. Every run of characters outside [a-z0-9]
// collapses into a single hyphen, and leading/trailing hyphens are
// trimmed. The transform is total and idempotent.
func Slugify(topic string) string {
	var b strings.Builder
	b.Grow(len(topic))

	lastHyphen := false
	for _, r := range strings.ToLower(topic) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen && b.Len() > 0 {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}
	return slug
}

// OutputPath builds the object storage key for a generated page:
// output/{slug(topic)}-{category}.html
func OutputPath(topic, categoryID string) string {
	return "output/" + Slugify(topic) + "-" + categoryID + ".html"
}
