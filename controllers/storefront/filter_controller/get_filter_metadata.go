package filter_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	filter_cache "github.com/Shahadat99x/fullstack-game-search/cache"
	"github.com/Shahadat99x/fullstack-game-search/config"
	"github.com/Shahadat99x/fullstack-game-search/models"
	"github.com/Shahadat99x/fullstack-game-search/store"
)

// GetFilterMetadata godoc
// @Summary Get filter metadata
// @Description Returns platform and region option counts plus the catalog price range for the storefront filter sidebar.
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.FilterMetadata
// @Failure 500 {object} models.ErrorBody
// @Router /store/filters/metadata [get]
func GetFilterMetadata(st *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cached, ok := filter_cache.Get(); ok {
			c.JSON(http.StatusOK, cached)
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		metadata, err := st.FilterMetadata(ctx)
		if err != nil {
			if config.IsProduction() {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to fetch filter metadata"))
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			}
			return
		}

		filter_cache.Set(metadata)
		c.JSON(http.StatusOK, metadata)
	}
}
