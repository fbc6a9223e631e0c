// Package web embeds the pre-built front-end bundle. The bundle is
// compiled into the binary so the service ships as a single file.
package web

import (
	"embed"

	"github.com/gin-contrib/static"
)

//go:embed all:dist
var dist embed.FS

// Bundle exposes the built front-end rooted at dist/ as a servable file
// system.
func Bundle() (static.ServeFileSystem, error) {
	return static.EmbedFolder(dist, "dist")
}
