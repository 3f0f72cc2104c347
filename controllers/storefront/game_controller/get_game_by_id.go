package game_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Shahadat99x/fullstack-game-search/config"
	"github.com/Shahadat99x/fullstack-game-search/models"
	"github.com/Shahadat99x/fullstack-game-search/store"
)

// GetGameByID godoc
// @Summary Get a single game
// @Description Get one catalog item by its ID.
// @Tags Storefront - Games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} models.Game
// @Failure 400 {object} models.ErrorBody
// @Failure 404 {object} models.ErrorBody
// @Failure 500 {object} models.ErrorBody
// @Router /store/games/{id} [get]
func GetGameByID(st *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		gameID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid game ID"))
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		game, err := st.GetGame(ctx, gameID.String())
		if err != nil {
			respondResolveError(c, err)
			return
		}
		if game == nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse("Game not found"))
			return
		}

		c.JSON(http.StatusOK, game)
	}
}
