package http

import "embed"

// webui holds the single-page front end served at the root path.
//
//go:embed webui/index.html
var webui embed.FS
