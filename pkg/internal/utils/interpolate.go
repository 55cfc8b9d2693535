package utils

import "strings"

// InterpolateAttributes resolves "{name}" placeholders in tmpl using lookup.
// A placeholder whose name is unknown resolves to the empty string. An opening
// brace with no closing brace is passed through literally. There is no escape
// syntax; object keys containing braces should not be templated.
func InterpolateAttributes(tmpl string, lookup func(string) (string, bool)) string {
	if !strings.ContainsRune(tmpl, '{') {
		return tmpl
	}

	var b strings.Builder
	b.Grow(len(tmpl))

	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		end += open

		b.WriteString(tmpl[:open])
		name := tmpl[open+1 : end]
		if v, ok := lookup(name); ok {
			b.WriteString(v)
		}
		tmpl = tmpl[end+1:]
	}
}
