package static

import "embed"

// FS exposes the shell's static assets for HTTP serving.
//
//go:embed *.css
var FS embed.FS
