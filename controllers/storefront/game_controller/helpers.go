package game_controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shahadat99x/fullstack-game-search/catalog"
	"github.com/Shahadat99x/fullstack-game-search/config"
	"github.com/Shahadat99x/fullstack-game-search/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// parseListRequest lifts the query parameters into a resolver request. All
// validation happens in the resolver, not here.
func parseListRequest(c *gin.Context) catalog.Request {
	var platforms []string
	if raw := c.Query("platforms"); raw != "" {
		platforms = strings.Split(raw, ",")
	}

	return catalog.Request{
		Search:    c.Query("search"),
		PriceMin:  c.Query("priceMin"),
		PriceMax:  c.Query("priceMax"),
		Region:    c.Query("region"),
		Platforms: platforms,
		Sort:      c.Query("sort"),
		Limit:     c.Query("limit"),
	}
}

// respondResolveError maps resolver errors onto the HTTP contract.
// Validation and configuration errors are safe to describe; generic
// data-access detail is suppressed in production.
func respondResolveError(c *gin.Context, err error) {
	var validationErr *catalog.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponseWithHint(
			validationErr.Message,
			string(validationErr.Reason),
		))
		return
	}

	var configErr *catalog.ConfigurationError
	if errors.As(err, &configErr) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithHint(
			"Store setup incomplete: missing "+configErr.Missing,
			configErr.Hint,
		))
		return
	}

	if config.IsProduction() {
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithHint(
			"Internal server error",
			"check the service logs and DATABASE_URL",
		))
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
}
