package services

import "github.com/microcosm-cc/bluemonday"

// sanitizePolicy strips every HTML element and escapes what remains.
// Sanitizing already-sanitized text is a no-op, so the same function
// runs on both the write path and every read path; stored legacy data
// cannot reintroduce markup even if a write once slipped through.
var sanitizePolicy = bluemonday.StrictPolicy()

// Sanitize neutralizes markup and script content in a free-text field.
func Sanitize(s string) string {
	return sanitizePolicy.Sanitize(s)
}
