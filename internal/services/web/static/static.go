// Package static embeds the stylesheet, scripts, and images served under
// /static/.
package static

import "embed"

// FS exposes web static assets for HTTP serving and export.
//
//go:embed *.css *.js img
var FS embed.FS
