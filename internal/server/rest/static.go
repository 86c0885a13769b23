package rest

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// noRoute serves the built frontend from config.StaticDir. Paths that are
// not files fall back to index.html so client-side routing works. API paths
// and requests without a static dir get a JSON 404.
func (s *Server) noRoute() gin.HandlerFunc {
	dir := s.config.StaticDir

	return func(c *gin.Context) {
		p := c.Request.URL.Path
		isRead := c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead

		if dir == "" || !isRead || p == "/api" || strings.HasPrefix(p, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
			return
		}

		file := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+p)))
		if serveFile(c, file) {
			return
		}
		if serveFile(c, filepath.Join(dir, "index.html")) {
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
	}
}

// serveFile writes the regular file at name and reports whether it did.
// http.ServeFile is avoided because it rejects any raw path containing "..",
// even after the path has been cleaned.
func serveFile(c *gin.Context, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	return true
}
