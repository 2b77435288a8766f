package handlers

import (
	"encoding/json"
	"html"
	"html/template"
	"strings"
)

// TemplateFuncs are the helpers available to the views.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"richtext": RichText,
		"percent":  Percent,
		"hxvals":   HXVals,
	}
}

// RichText renders the light markup used by the canned answers: **bold**
// spans and line breaks. Everything else is escaped.
func RichText(s string) template.HTML {
	escaped := html.EscapeString(s)

	var b strings.Builder
	parts := strings.Split(escaped, "**")
	for i, part := range parts {
		// An odd part sits between two markers. A trailing unmatched marker
		// is written back as text.
		switch {
		case i%2 == 1 && i < len(parts)-1:
			b.WriteString("<strong>" + part + "</strong>")
		case i%2 == 1:
			b.WriteString("**" + part)
		default:
			b.WriteString(part)
		}
	}

	return template.HTML(strings.ReplaceAll(b.String(), "\n", "<br>\n"))
}

// Percent formats a confidence in [0, 1] as a whole percentage.
func Percent(f float64) int {
	return int(f*100 + 0.5)
}

// HXVals encodes a single key/value pair as the JSON object expected by
// the hx-vals attribute. The template escapes it as an attribute value.
func HXVals(key, value string) (string, error) {
	b, err := json.Marshal(map[string]string{key: value})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
