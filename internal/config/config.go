package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"castle-siege/internal/game"
)

type Config struct {
	HTTPAddr string

	BoardSize      int
	StartingPlayer string // "random", "player1" or "player2"
	TurnRule       string // "always" or "keep-on-capture"

	RoomTTL       time.Duration
	SweepInterval time.Duration
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		BoardSize:      getenvInt("BOARD_SIZE", game.DefaultBoardSize),
		StartingPlayer: strings.ToLower(getenv("STARTING_PLAYER", "random")),
		TurnRule:       strings.ToLower(getenv("TURN_RULE", "always")),
		RoomTTL:        getenvDuration("ROOM_TTL", 2*time.Hour),
		SweepInterval:  getenvDuration("SWEEP_INTERVAL", time.Minute),
	}
}

// GameOptions turns the configured defaults into engine options. A non-empty
// startingPlayer overrides the configured one.
func (c Config) GameOptions(startingPlayer string) ([]game.Option, error) {
	rule, err := game.ParseTurnRule(c.TurnRule)
	if err != nil {
		return nil, err
	}
	opts := []game.Option{game.WithTurnRule(rule)}

	sp := strings.ToLower(startingPlayer)
	if sp == "" {
		sp = c.StartingPlayer
	}
	if sp != "" && sp != "random" {
		p, err := game.ParsePlayer(sp)
		if err != nil {
			return nil, err
		}
		opts = append(opts, game.WithStartingPlayer(p))
	}
	return opts, nil
}

// Validate rejects settings the engine cannot start a game with.
func (c Config) Validate() error {
	if _, err := c.GameOptions(""); err != nil {
		return err
	}
	if _, err := game.NewGame(c.BoardSize); err != nil {
		return fmt.Errorf("BOARD_SIZE: %w", err)
	}
	return nil
}
