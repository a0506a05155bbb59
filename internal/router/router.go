package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ApproveHOD(c *ginext.Context)
	ApproveHall(c *ginext.Context)
	PublicApproved(c *ginext.Context)
	SyncUser(c *ginext.Context)
	GetProfile(c *ginext.Context)
}

type Options struct {
	Mode        string
	UploadsDir  string
	MetricsPath string
	Auth        ginext.HandlerFunc
}

func InitRouter(opts Options, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(opts.Mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public calendar view, no token required.
		api.GET("/bookings/public/approved", h.PublicApproved)

		authed := api.Group("", opts.Auth)
		{
			authed.POST("/bookings", h.CreateBooking)
			authed.GET("/bookings", h.ListBookings)
			authed.PUT("/bookings/:id/approve/hod", h.ApproveHOD)
			authed.PUT("/bookings/:id/approve/hall", h.ApproveHall)

			authed.POST("/auth/sync-user", h.SyncUser)
			authed.GET("/auth/profile", h.GetProfile)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if opts.MetricsPath != "" {
		metricsHandler := promhttp.Handler()
		router.GET(opts.MetricsPath, func(c *ginext.Context) {
			metricsHandler.ServeHTTP(c.Writer, c.Request)
		})
	}

	if opts.UploadsDir != "" {
		router.Static("/uploads", opts.UploadsDir)
	}

	return router
}
