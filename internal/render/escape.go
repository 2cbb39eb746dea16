// Package render turns project records into the markup inserted into the
// project grid. Every untrusted text field goes through EscapeHTML.
package render

import (
	"fmt"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML replaces the five markup-significant characters with their
// character references and leaves everything else untouched.
// Escaping is not idempotent: an existing "&amp;" becomes "&amp;amp;".
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeValue escapes an arbitrary value as text, for fields that may be
// absent or not strings at all. An absent value (nil) renders as "", so a
// missing description produces an empty element rather than "<nil>". Any
// other non-string value is formatted with fmt.Sprint and then escaped.
//
// Project records never reach this path with null, objects or arrays:
// models.ParseProjects already turns those into "".
func EscapeValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return EscapeHTML(val)
	default:
		return EscapeHTML(fmt.Sprint(val))
	}
}
