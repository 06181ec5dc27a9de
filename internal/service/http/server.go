package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pixelpress/pixelpress/config"
	"github.com/pixelpress/pixelpress/internal/modules/ratelimit"
	"github.com/pixelpress/pixelpress/internal/service/http/handler"
	"github.com/pixelpress/pixelpress/internal/service/http/middleware"
)

func Serve(port string) {
	e := gin.New()
	initRouter(e)
	if err := e.Run(port); err != nil {
		panic(err)
	}
}

func initRouter(e *gin.Engine) {
	cfg := config.GConfig
	e.Use(gin.Recovery())
	e.Use(middleware.RequestLogger())

	authLimiter := ratelimit.NewLimiter(cfg.AuthMax, cfg.AuthWindowDuration())
	compressLimiter := ratelimit.NewLimiter(cfg.CompressMax, cfg.CompressWindowDuration())

	api := e.Group("/api")
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", middleware.RateLimit(authLimiter), handler.Register)
		authGroup.POST("/login", middleware.RateLimit(authLimiter), handler.Login)
		authGroup.GET("/me", middleware.RequireAuth(cfg), handler.Me)
		authGroup.PUT("/profile", middleware.RequireAuth(cfg), handler.UpdateProfile)
	}

	api.POST("/compress", middleware.RateLimit(compressLimiter), middleware.OptionalAuth(cfg), handler.Compress)

	compression := api.Group("/compression", middleware.RequireAuth(cfg))
	{
		compression.GET("/history", handler.History)
		compression.GET("/stats", handler.Stats)
		compression.DELETE("/history/:id", handler.DeleteRecord)
	}

	api.DELETE("/cleanup/:filename", middleware.RequireAuth(cfg), handler.Cleanup)
	api.GET("/admin/stats", middleware.RequireAuth(cfg), middleware.AdminOnly(), handler.AdminStats)
	api.GET("/health", handler.Health)
	api.GET("/info", handler.Info)

	// Local artifacts are public under /static; the OSS store hands out
	// presigned URLs instead.
	if cfg.StorageSupplier == "local" {
		e.Static("/static", cfg.UploadDir)
	}

	e.NoRoute(spaFallback(cfg.ClientDir))
}

// spaFallback serves the built client bundle, falling back to index.html for
// client-side routes. Unmatched /api paths stay JSON.
func spaFallback(clientDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || path == "/api" {
			c.JSON(http.StatusNotFound, gin.H{"code": 10006, "message": "not found"})
			return
		}
		full := filepath.Join(clientDir, filepath.Clean("/"+path))
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			c.File(full)
			return
		}
		c.File(filepath.Join(clientDir, "index.html"))
	}
}
