package server

import (
	"net/http"

	"plate-auction-web/internal/auction"
	"plate-auction-web/internal/session"
	handler "plate-auction-web/services/web/handler"
	"plate-auction-web/services/web/views"
	"plate-auction-web/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures all Gin routes for the application.
// Request metrics are registered on reg and exposed at /metrics.
func SetupRouter(service auction.Service, sessions *session.Store, reg *prometheus.Registry) (*gin.Engine, error) {
	metrics, err := NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	router := gin.New() // New router without default middleware for full control over middleware and logging
	router.SetHTMLTemplate(views.Templates())

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // X-Request-ID in and out
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(metrics.Handler())

	pagesHandler := handler.NewPagesHandler(service, sessions)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, handler.ListingPath)
	})

	router.GET(handler.LoginPath, pagesHandler.LoginPageHandler)
	router.POST(handler.LoginPath, pagesHandler.SaveSessionHandler)
	router.POST("/logout", pagesHandler.LogoutHandler)

	router.GET(handler.ListingPath, pagesHandler.ListingPageHandler)

	bid := router.Group(handler.BidPath)
	{
		bid.GET("", pagesHandler.BidPageHandler)
		bid.POST("", pagesHandler.SubmitBidHandler)
	}

	router.GET("/healthz", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"status": "ok"}, "healthy")
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return router, nil
}
