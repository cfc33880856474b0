// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips unsafe markup from user-authored rich text.
// Subject notices (avisos) are written by professors and rendered in the
// mobile clients, so they pass through here on every write.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowTables()
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	return p
}

// Sanitize returns the input with scripts, event handlers, and javascript:
// URLs removed. Safe formatting, links, and tables are preserved.
func Sanitize(html string) string {
	return policy.Sanitize(html)
}
