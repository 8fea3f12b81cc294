package web

import "embed"

// Templates embeds the server-rendered directory pages so the binary can
// serve them without external files.
//
//go:embed templates
var Templates embed.FS
