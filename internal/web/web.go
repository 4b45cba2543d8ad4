package web

import (
	"embed"
	"io/fs"
)

// Assets holds the embedded contact form page and its scripts
//
//go:embed templates static
var Assets embed.FS

// StaticFS returns the static file subtree for serving under /static
func StaticFS() (fs.FS, error) {
	return fs.Sub(Assets, "static")
}
