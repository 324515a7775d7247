package gobantest

import (
	"strings"

	"github.com/towzeur/go-game-implementation/goban"
)

// Labels splits a space-separated move list.
func Labels(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}

// Game plays ms on a fresh size×size board and panics on any illegal
// ply. "pass" in ms passes.
func Game(size int, ms string) *goban.Game {
	g, e := goban.NewSquare(size)
	if e != nil {
		panic(e)
	}
	Play(g, ms)
	return g
}

// Play applies ms to g and panics on any illegal ply.
func Play(g *goban.Game, ms string) {
	for _, l := range Labels(ms) {
		if strings.EqualFold(l, "pass") {
			g.Pass()
			continue
		}
		if e := g.Move(l); e != nil {
			panic(e)
		}
	}
}

// Render returns the plain rendering of g.
func Render(g *goban.Game) string {
	var b strings.Builder
	if e := g.Display(&b); e != nil {
		panic(e)
	}
	return b.String()
}
