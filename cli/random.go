package cli

import (
	"math/rand"

	"github.com/towzeur/go-game-implementation/goban"
)

// NewRandomPlayer returns a player that places stones on empty points
// in random order. A point the game rejects is not offered again for
// the same position; the player passes once none are left.
func NewRandomPlayer(seed int64) Player {
	return &randomPlayer{r: rand.New(rand.NewSource(seed))}
}

type randomPlayer struct {
	r *rand.Rand

	ply   int
	hash  uint64
	moves []goban.Point
}

func (p *randomPlayer) GetAction(g *goban.Game) Action {
	b := g.Board()
	if p.moves == nil || p.ply != g.Ply() || p.hash != b.Hash() {
		p.ply, p.hash = g.Ply(), b.Hash()
		p.moves = p.moves[:0]
		for row := 0; row < b.Height(); row++ {
			for col := 0; col < b.Width(); col++ {
				if pt := (goban.Point{Row: row, Col: col}); b.At(pt) == goban.NoColor {
					p.moves = append(p.moves, pt)
				}
			}
		}
		p.r.Shuffle(len(p.moves), func(i, j int) {
			p.moves[i], p.moves[j] = p.moves[j], p.moves[i]
		})
	}
	if len(p.moves) == 0 {
		return Action{Type: Pass}
	}
	next := p.moves[len(p.moves)-1]
	p.moves = p.moves[:len(p.moves)-1]
	return Action{Type: Place, Vertex: g.Vertex(next)}
}
