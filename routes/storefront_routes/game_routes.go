package storefront_routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Shahadat99x/fullstack-game-search/catalog"
	"github.com/Shahadat99x/fullstack-game-search/controllers/storefront/filter_controller"
	"github.com/Shahadat99x/fullstack-game-search/controllers/storefront/game_controller"
	"github.com/Shahadat99x/fullstack-game-search/middleware"
	"github.com/Shahadat99x/fullstack-game-search/store"
)

// SetupStorefrontRoutes mounts the public storefront routes. redisClient may
// be nil, in which case rate limiting is skipped.
func SetupStorefrontRoutes(router *gin.RouterGroup, resolver *catalog.Resolver, st *store.Client, redisClient *redis.Client) {
	// Storefront routes (public, no auth required)
	storefront := router.Group("/store")
	if redisClient != nil {
		storefront.Use(middleware.RateLimiter(redisClient, 120, time.Minute))
	}

	games := storefront.Group("/games")
	{
		games.GET("", game_controller.ListGames(resolver))
		games.GET("/suggest", game_controller.SuggestGames(resolver))
		games.GET("/:id", game_controller.GetGameByID(st))
	}

	storefront.GET("/filters/metadata", filter_controller.GetFilterMetadata(st))
}
