package services

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.UGCPolicy()

// sanitize cleans user-supplied HTML content to prevent stored XSS.
func sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
