package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go-slug-shortener/config"
)

// RegisterRoutes sets up all the routes for the slug shortener service
// and applies the CORS, request id and metrics middleware.
func RegisterRoutes(r *gin.Engine, handler URLHandlerInterface, config *config.Config) {
	r.Use(CORSMiddleware(), RequestIDMiddleware(), MetricsMiddleware())

	r.POST("/shorten", handler.ShortenURL)
	r.GET("/url/:slug", handler.GetURL)

	r.GET("/health", handler.HealthCheck)
	if config.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}
