// Package web holds the map page and its script, embedded into the binary.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html static/*
var files embed.FS

// Templates parses the page templates. Each template is named after its file.
func Templates() (*template.Template, error) {
	return template.ParseFS(files, "templates/*.html")
}

// Static serves the files under static/.
func Static() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
