package game_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shahadat99x/fullstack-game-search/catalog"
	"github.com/Shahadat99x/fullstack-game-search/config"
	"github.com/Shahadat99x/fullstack-game-search/models"
)

// ListGames godoc
// @Summary List storefront games
// @Description Search and filter the game catalog with optional price range, region, platforms, sorting, and row cap.
// @Tags Storefront - Games
// @Produce json
// @Param search query string false "Search term (max 80 chars)"
// @Param priceMin query number false "Inclusive lower price bound"
// @Param priceMax query number false "Inclusive upper price bound"
// @Param region query string false "Region (exact match)"
// @Param platforms query string false "Comma-separated platform list"
// @Param sort query string false "Sort mode (popularity | price_asc | price_desc | discount)" default(popularity)
// @Param limit query int false "Row cap (max 100)" default(50)
// @Success 200 {object} models.ListResponse
// @Failure 400 {object} models.ErrorBody
// @Failure 500 {object} models.ErrorBody
// @Router /store/games [get]
func ListGames(resolver *catalog.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		result, err := resolver.Resolve(ctx, parseListRequest(c))
		if err != nil {
			respondResolveError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.ListResponse{
			Count: result.Count,
			Items: result.Items,
		})
	}
}
