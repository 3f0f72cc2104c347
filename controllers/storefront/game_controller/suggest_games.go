package game_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shahadat99x/fullstack-game-search/catalog"
	"github.com/Shahadat99x/fullstack-game-search/config"
	"github.com/Shahadat99x/fullstack-game-search/models"
)

// suggestLimit caps the offer rows shown in the autocomplete dropdown.
const suggestLimit = "8"

// SuggestGames godoc
// @Summary Autocomplete suggestions
// @Description Returns query refinement suggestions plus a short list of matching offers for the search dropdown.
// @Tags Storefront - Games
// @Produce json
// @Param search query string true "Partial search term"
// @Success 200 {object} models.SuggestResponse
// @Failure 400 {object} models.ErrorBody
// @Failure 500 {object} models.ErrorBody
// @Router /store/games/suggest [get]
func SuggestGames(resolver *catalog.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		if search == "" {
			c.JSON(http.StatusOK, models.SuggestResponse{
				Suggestions: []string{},
				Items:       []models.Game{},
			})
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		result, err := resolver.Resolve(ctx, catalog.Request{
			Search: search,
			Limit:  suggestLimit,
		})
		if err != nil {
			respondResolveError(c, err)
			return
		}

		suggestions := catalog.QuerySuggestions(search)
		if suggestions == nil {
			suggestions = []string{}
		}

		c.JSON(http.StatusOK, models.SuggestResponse{
			Suggestions: suggestions,
			Count:       result.Count,
			Items:       result.Items,
		})
	}
}
