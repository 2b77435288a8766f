// Package views embeds the HTML templates.
package views

import "embed"

//go:embed layouts/*.html partials/*.html *.html
var FS embed.FS
