package api

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"newspulse/config"
	"newspulse/storage"
)

// RegisterHeadlineRoutes registers read endpoints over the stored
// pipeline output files.
func RegisterHeadlineRoutes(r *gin.Engine, cfg config.Config) {
	g := r.Group("/api/headlines")
	g.GET("", serveArticles(cfg.HeadlinesPath))
	g.GET("/analyzed", serveArticles(cfg.AnalyzedPath))
}

// serveArticles returns a handler that reads the article collection at
// path on each request, so results reflect the latest pipeline run.
func serveArticles(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		articles, err := storage.ReadArticles(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				c.JSON(http.StatusNotFound, gin.H{"error": "no data yet; run the pipeline first"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"count":    len(articles),
			"articles": articles,
		})
	}
}
