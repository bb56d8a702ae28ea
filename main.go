package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"castle-siege/internal/config"
	"castle-siege/internal/game"
)

// Hot-seat play in the terminal. Each line is one click given as
// "row col" (1-based); "q" quits.
func main() {
	cfg := config.Load()
	opts, err := cfg.GameOptions("")
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	g, err := game.NewGame(cfg.BoardSize, opts...)
	if err != nil {
		log.Fatalf("new game: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)
	for !g.IsFinished() {
		fmt.Printf("\nTurn: %s\n", g.CurrentPlayer)
		fmt.Print(g.Board.String())
		if g.Selected != nil {
			fmt.Printf("Selected %s, targets %v\n", *g.Selected, g.ValidTargets(*g.Selected))
		}

		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			fmt.Println()
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 1 && parts[0] == "q" {
			return
		}
		if len(parts) != 2 {
			fmt.Println("Enter: row col")
			continue
		}
		r, errR := strconv.Atoi(parts[0])
		c, errC := strconv.Atoi(parts[1])
		p := game.Position{Row: r - 1, Col: c - 1}
		if errR != nil || errC != nil || !g.Board.InBounds(p) {
			fmt.Println("Cell outside the board.")
			continue
		}

		before := g.LastMove
		g.Click(p)
		if lm := g.LastMove; lm != before {
			fmt.Printf("%s moved %s -> %s, captured %d\n", lm.Player, lm.From, lm.To, len(lm.Captured))
		}
	}

	fmt.Print("\n", g.Board.String())
	fmt.Printf("Game over! %s wins.\n", g.Winner)
	js, _ := json.MarshalIndent(g.Scores(), "", "  ")
	fmt.Println(string(js))
}
