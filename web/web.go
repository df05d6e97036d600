// Package web carries the embedded dashboard page served at the root
// path. The page is static; all data comes from the JSON API.
package web

import (
	"embed"
)

//go:embed index.html
var content embed.FS

// IndexHTML returns the dashboard page bytes.
func IndexHTML() ([]byte, error) {
	return content.ReadFile("index.html")
}
