package http

import (
	"net/http"

	"castle-siege/internal/config"
	"castle-siege/internal/game"

	"github.com/gin-gonic/gin"
)

// GetConfigHandler reports the defaults new rooms start with and the fixed
// rule constants, so renderers need not hard-code them.
func GetConfigHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"board_size":          cfg.BoardSize,
			"min_board_size":      game.MinBoardSize,
			"max_board_size":      game.MaxBoardSize,
			"starting_player":     cfg.StartingPlayer,
			"turn_rule":           cfg.TurnRule,
			"territory_win_count": game.TerritoryWinCount,
			"attrition_limit":     game.AttritionLimit,
		})
	}
}

func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
