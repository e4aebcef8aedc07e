package api

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"newspulse/config"
	"newspulse/pipeline"
)

// RegisterPipelineRoutes registers endpoints that trigger pipeline
// stages. They run asynchronously and return 202 Accepted immediately.
func RegisterPipelineRoutes(r *gin.Engine, cfg config.Config) {
	g := r.Group("/api/pipeline")
	g.POST("/fetch", handleFetch(cfg))
	g.POST("/analyze", handleAnalyze(cfg))
	g.POST("/run", handleRun(cfg))
}

func handleFetch(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		go func() {
			if err := pipeline.RunFetch(context.Background(), cfg, pipeline.NewSource(cfg)); err != nil {
				log.Printf("fetch stage failed: %v", err)
			}
		}()
		c.JSON(http.StatusAccepted, gin.H{"status": "fetch started"})
	}
}

func handleAnalyze(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		classifier, err := pipeline.NewClassifier(cfg)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		go func() {
			if err := pipeline.RunAnalyze(context.Background(), cfg, classifier); err != nil {
				log.Printf("analyze stage failed: %v", err)
			}
		}()
		c.JSON(http.StatusAccepted, gin.H{"status": "analyze started"})
	}
}

func handleRun(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		go func() {
			if err := pipeline.RunOnce(context.Background(), cfg); err != nil {
				log.Printf("pipeline run failed: %v", err)
			}
		}()
		c.JSON(http.StatusAccepted, gin.H{"status": "pipeline started"})
	}
}
