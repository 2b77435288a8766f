// Package demodocs bundles the sample French legal documents shown by the demo.
package demodocs

import "embed"

// FS holds the bundled documents at its root.
//
//go:embed *.txt
var FS embed.FS
