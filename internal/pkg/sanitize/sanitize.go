// Package sanitize strips unsafe markup from user-authored rich text
// before it is persisted.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("style").OnElements("span", "p")
	return p
}()

// HTML sanitizes rich text content with a UGC policy. Script tags,
// event handlers and unknown elements are removed.
func HTML(content string) string {
	return strings.TrimSpace(htmlPolicy.Sanitize(content))
}
