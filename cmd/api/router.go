package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	dashboardHandler "venue-content-backend/internal/domains/dashboard/handler"
	"venue-content-backend/internal/shared/middleware"
	"venue-content-backend/pkg/container"
)

// entityRoutes is what every content handler exposes through the shared crud type.
type entityRoutes interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	AdminGet(c *gin.Context)
	AdminList(c *gin.Context)
	PublicList(c *gin.Context)
	PublicGet(c *gin.Context)
}

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.AllowedOrigins),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupPublicRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// PUBLIC ROUTES
// ========================================
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	venues := v1.Group("/venues/:venue")
	{
		venues.GET("/page", c.DashboardHandler.VenuePage)
		venues.GET("/events", c.EventHandler.PublicList)
		venues.GET("/performers", c.PerformerHandler.PublicList)
		venues.GET("/deals", c.DealHandler.PublicList)
		venues.GET("/gallery", c.GalleryHandler.PublicList)
		venues.GET("/videos", c.VideoHandler.PublicList)
		venues.GET("/posts", c.PostHandler.PublicList)
		venues.GET("/hours", c.HoursHandler.PublicList)
		venues.GET("/offerings", c.OfferingHandler.PublicList)
		venues.GET("/content", c.ContentHandler.PublicList)
		venues.GET("/instagram", c.InstagramHandler.PublicList)
	}

	v1.GET("/events/:id", c.EventHandler.PublicGet)
	v1.GET("/performers/:id", c.PerformerHandler.PublicGet)
	v1.GET("/deals/:id", c.DealHandler.PublicGet)
	v1.GET("/gallery/:id", c.GalleryHandler.PublicGet)
	v1.GET("/videos/:id", c.VideoHandler.PublicGet)
	v1.GET("/posts/:id", c.PostHandler.PublicGet)
	v1.GET("/offerings/:id", c.OfferingHandler.PublicGet)
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(c.JWTManager),
		middleware.AdminMiddleware(),
		middleware.InvalidateOnWrite(c.Cache, dashboardHandler.FreshPagePattern),
	)

	adminEntity(admin, "/performers", c.PerformerHandler)
	adminEntity(admin, "/events", c.EventHandler)
	adminEntity(admin, "/deals", c.DealHandler)
	adminEntity(admin, "/gallery", c.GalleryHandler)
	adminEntity(admin, "/videos", c.VideoHandler)
	adminEntity(admin, "/posts", c.PostHandler)
	adminEntity(admin, "/offerings", c.OfferingHandler)

	// static segment; gin prefers it over /hours/:id
	admin.PUT("/hours/week", c.HoursHandler.ReplaceWeek)
	adminEntity(admin, "/hours", c.HoursHandler)

	content := admin.Group("/content")
	{
		content.GET("", c.ContentHandler.AdminList)
		content.PUT("", c.ContentHandler.Upsert)
		content.DELETE("/:id", c.ContentHandler.Delete)
	}

	instagram := admin.Group("/instagram")
	{
		instagram.GET("", c.InstagramHandler.AdminList)
		instagram.GET("/sync", c.InstagramHandler.Status)
		instagram.POST("/sync", c.InstagramHandler.Sync)
		instagram.POST("/sync/async", c.InstagramHandler.SyncAsync)
		instagram.PATCH("/:id", c.InstagramHandler.Curate)
		instagram.DELETE("/:id", c.InstagramHandler.Delete)
	}

	admin.GET("/dashboard", c.DashboardHandler.Counts)
	admin.GET("/events/export", c.DashboardHandler.ExportEvents)
}

func adminEntity(g *gin.RouterGroup, path string, h entityRoutes) {
	r := g.Group(path)
	r.GET("", h.AdminList)
	r.POST("", h.Create)
	r.GET("/:id", h.AdminGet)
	r.PUT("/:id", h.Update)
	r.DELETE("/:id", h.Delete)
}

// ========================================
// HEALTH
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		services := gin.H{}

		// Database is the only hard dependency
		if err := appCtx.DB.Ping(ctx); err != nil {
			services["database"] = "error: " + err.Error()
			status = "degraded"
		} else {
			services["database"] = "ok"
			if stats, err := appCtx.DB.Stats(); err == nil {
				services["pool"] = stats
			}
		}

		switch {
		case appCtx.Cache == nil:
			services["redis"] = "disconnected"
		case appCtx.Cache.Ping(ctx) != nil:
			services["redis"] = "error"
		default:
			services["redis"] = "ok"
		}

		switch {
		case appCtx.Storage == nil:
			services["storage"] = "disabled"
		case appCtx.Storage.Ping(ctx) != nil:
			services["storage"] = "error"
		default:
			services["storage"] = "ok"
		}

		services["instagramSync"] = appCtx.Synchronizer.State().String()

		code := http.StatusOK
		if status != "ok" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  services,
		})
	}
}
