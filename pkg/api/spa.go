package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// ServeBundle resolves unmatched routes against the pre-built front-end
// bundle. Exact asset hits are served with a content type derived from
// the file extension. Misses that look like file requests (a "." in the
// path) answer 404 with body "404"; everything else, including the root,
// falls back to the embedded index document so client-side routes work.
func ServeBundle(bundle static.ServeFileSystem) gin.HandlerFunc {
	fileserver := http.FileServer(bundle)
	return func(c *gin.Context) {
		defer c.Abort()

		path := strings.TrimPrefix(c.Request.URL.Path, "/")
		if path != "" && bundle.Exists("/", c.Request.URL.Path) {
			fileserver.ServeHTTP(c.Writer, c.Request)
			return
		}
		if strings.Contains(path, ".") {
			c.String(http.StatusNotFound, "404")
			return
		}

		c.Request.URL.Path = "/"
		fileserver.ServeHTTP(c.Writer, c.Request)
	}
}
