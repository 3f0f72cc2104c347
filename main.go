// @title Game Search Storefront API
// @version 1.0
// @description Catalog browsing API for the game marketplace storefront
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Shahadat99x/fullstack-game-search/catalog"
	"github.com/Shahadat99x/fullstack-game-search/config"
	"github.com/Shahadat99x/fullstack-game-search/routes/storefront_routes"
	"github.com/Shahadat99x/fullstack-game-search/store"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	db, pool, err := config.OpenDatabases()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	storeClient := store.NewClient(db, pool)
	defer storeClient.Close()

	redisClient, err := config.ConnectRedis()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	resolver := catalog.NewResolver(storeClient)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")
	storefront_routes.SetupStorefrontRoutes(api, resolver, storeClient, redisClient)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	port := config.Env("PORT", "8081")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 Storefront API listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️ Forced shutdown: %v", err)
	}
	log.Println("✅ Server stopped")
}
