package http

import (
	"errors"
	"net/http"
	"strconv"

	"castle-siege/internal/game"
	"castle-siege/internal/room"

	"github.com/gin-gonic/gin"
)

// errorStatus maps domain errors onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrBadPosition),
		errors.Is(err, game.ErrBoardSize),
		errors.Is(err, game.ErrUnknownPlayer),
		errors.Is(err, game.ErrUnknownTurnRule):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func lookupRoom(c *gin.Context, rm *room.Manager) (*room.Room, bool) {
	rx, ok := rm.Get(c.Param("code"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return nil, false
	}
	return rx, true
}

// CreateRoomHandler starts a new room. An empty body uses the configured
// defaults.
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
				return
			}
		}
		rx, err := rm.CreateRoom(req.BoardSize, req.StartingPlayer)
		if err != nil {
			c.JSON(errorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"room_code": rx.Code, "room_id": rx.ID, "state": rm.State(rx)})
	}
}

func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := lookupRoom(c, rm)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": rm.State(rx)})
	}
}

func DeleteRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := rm.DeleteRoom(c.Param("code")); err != nil {
			c.JSON(errorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ClickHandler forwards one click. Whatever the click did, the response is
// the resulting state.
func ClickHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := lookupRoom(c, rm)
		if !ok {
			return
		}
		var req ClickRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "row and col required"})
			return
		}
		st, err := rm.Click(rx, game.Position{Row: *req.Row, Col: *req.Col})
		if err != nil {
			c.JSON(errorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": st})
	}
}

// MoveHandler applies a full move. A rejected move answers 409 with the
// unchanged state.
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := lookupRoom(c, rm)
		if !ok {
			return
		}
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from and to required"})
			return
		}
		st, applied, err := rm.Move(rx, *req.From, *req.To)
		if err != nil {
			c.JSON(errorStatus(err), gin.H{"error": err.Error()})
			return
		}
		if !applied {
			c.JSON(http.StatusConflict, gin.H{"error": "move not allowed", "state": st})
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": st})
	}
}

func TargetsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := lookupRoom(c, rm)
		if !ok {
			return
		}
		row, errR := strconv.Atoi(c.Query("row"))
		col, errC := strconv.Atoi(c.Query("col"))
		if errR != nil || errC != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "row and col must be integers"})
			return
		}
		targets, err := rm.Targets(rx, game.Position{Row: row, Col: col})
		if err != nil {
			c.JSON(errorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"targets": targets})
	}
}

func LegalMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := lookupRoom(c, rm)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"moves": rm.LegalMoves(rx)})
	}
}
