// Package web embeds the built sweep page assets served by the frontend
// server.
package web

import "embed"

//go:embed dist
var Assets embed.FS
