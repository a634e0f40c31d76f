// Package web embebe las plantillas HTML y los assets del sitio (css y admin.js).
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var files embed.FS

// Templates plantillas con layouts/ en la raíz.
func Templates() fs.FS {
	return sub("templates")
}

// Static css y js servidos bajo /assets.
func Static() fs.FS {
	return sub("static")
}

func sub(dir string) fs.FS {
	s, err := fs.Sub(files, dir)
	if err != nil {
		panic("web: " + err.Error())
	}
	return s
}
