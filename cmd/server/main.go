// QuickCompare Price Comparison API
// @title QuickCompare API
// @version 1.0
// @description Compares grocery prices across Indian quick-commerce platforms (Zepto, Blinkit, Swiggy Instamart, BigBasket) by total cost including delivery fees
// @host localhost:8080
// @BasePath /
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"

	_ "quickcompare/docs"
	"quickcompare/internal/cache"
	"quickcompare/internal/compare"
	"quickcompare/internal/config"
	"quickcompare/internal/handlers"
	"quickcompare/internal/history"
	"quickcompare/internal/middleware"
	"quickcompare/internal/scraper"
	"quickcompare/internal/session"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Core collaborators
	store := cache.New(cfg.Cache.TTL)
	pool := session.NewPool(cfg.Browser)
	registry := scraper.DefaultRegistry(pool, store, cfg.Scraper)
	service := compare.NewService(registry, store, cfg.Scraper)

	hist, err := history.New(cfg.History.Path)
	if err != nil {
		log.Printf("History disabled: %v", err)
		hist = nil
	} else {
		service.SetRecorder(hist)
	}

	// Initialize Gin router
	r := gin.Default()

	r.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
		"172.16.0.0/12",  // Docker networks
		"10.0.0.0/8",     // Private networks
		"192.168.0.0/16", // Private networks
	})

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsConfig))

	r.Use(middleware.SecurityHeaders())

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst)

	compareHandler := handlers.NewCompareHandler(service, hist)

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(limiter))
	{
		api.POST("/compare", compareHandler.Compare)
		api.POST("/scrape/:platform", middleware.ScrapeCooldownMiddleware(30*time.Second), compareHandler.ScrapePlatform)
		api.GET("/platforms", compareHandler.Platforms)
		api.GET("/status", compareHandler.Status)
		api.GET("/history", compareHandler.History)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": pool.Stats()})
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting requests, then tear down the
	// browser and history store
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	pool.Close()
	if hist != nil {
		if err := hist.Close(); err != nil {
			log.Printf("Failed to close history store: %v", err)
		}
	}

	log.Println("Server exited")
}
