package selfplay

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/towzeur/go-game-implementation/goban"
)

type Config struct {
	Games   int
	Threads int
	Seed    int64
	Cutoff  int

	Height   int
	Width    int
	Handicap int

	// PassRate is the chance that a player passes even when a legal
	// move exists.
	PassRate float64

	Verbose bool
	Log     *zap.SugaredLogger
}

type Stats struct {
	Plies    int
	Passed   int
	Cutoff   int
	Captured int

	Rejected struct {
		Occupied int
		Suicide  int
		Ko       int
	}

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.Passed + s.Cutoff
}

func (s *Stats) Merge(other *Stats) Stats {
	out := *s
	out.Plies += other.Plies
	out.Passed += other.Passed
	out.Cutoff += other.Cutoff
	out.Captured += other.Captured
	out.Rejected.Occupied += other.Rejected.Occupied
	out.Rejected.Suicide += other.Rejected.Suicide
	out.Rejected.Ko += other.Rejected.Ko
	out.Games = append(out.Games[:len(out.Games):len(out.Games)], other.Games...)
	return out
}

type gameSpec struct {
	i int
	r *rand.Rand
}

type Result struct {
	I      int
	Game   *goban.Game
	Cutoff bool
	Stats  Stats
}

// Simulate plays c.Games games of random legal moves and checks the
// engine's bookkeeping after every ply. The first violation cancels
// the remaining games and is returned.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	var st Stats
	if c.Log == nil {
		c.Log = zap.NewNop().Sugar()
	}
	if c.Threads < 1 {
		c.Threads = 1
	}

	grp, ctx := errgroup.WithContext(ctx)
	gc := make(chan gameSpec)
	rc := make(chan Result)

	grp.Go(func() error {
		defer close(gc)
		r := rand.New(rand.NewSource(c.Seed))
		for i := 0; i < c.Games; i++ {
			select {
			case gc <- gameSpec{i: i, r: rand.New(rand.NewSource(r.Int63()))}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	workers, wctx := errgroup.WithContext(ctx)
	for i := 0; i < c.Threads; i++ {
		workers.Go(func() error {
			return worker(wctx, c, gc, rc)
		})
	}
	grp.Go(func() error {
		defer close(rc)
		return workers.Wait()
	})

	for r := range rc {
		if c.Verbose {
			c.Log.Infow("game",
				"n", r.I,
				"plies", r.Game.Ply(),
				"cutoff", r.Cutoff,
				"black", r.Game.Board().Stones(goban.Black),
				"white", r.Game.Board().Stones(goban.White),
			)
		}
		st = st.Merge(&r.Stats)
		st.Games = append(st.Games, r)
	}
	return st, grp.Wait()
}

func worker(ctx context.Context, c *Config, games <-chan gameSpec, out chan<- Result) error {
	for spec := range games {
		r, err := playOne(c, spec)
		if err != nil {
			return errors.Wrapf(err, "game %d", spec.i)
		}
		select {
		case out <- r:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func playOne(c *Config, spec gameSpec) (Result, error) {
	g, err := goban.New(goban.Config{Height: c.Height, Width: c.Width})
	if err != nil {
		return Result{}, err
	}
	if c.Handicap > 0 {
		if err := g.HandicapStones(c.Handicap); err != nil {
			return Result{}, err
		}
	}
	res := Result{I: spec.i, Game: g}
	st := &res.Stats
	for g.ConsecutivePasses() < 2 {
		if c.Cutoff > 0 && g.Ply() >= c.Cutoff {
			res.Cutoff = true
			st.Cutoff++
			break
		}
		before := g.Board().Stones(g.ToMove().Flip())
		if !move(g, spec.r, c.PassRate, st) {
			g.Pass()
		}
		st.Plies++
		if last := g.History().Record(g.Ply() - 1); !last.Pass {
			st.Captured += before - g.Board().Stones(last.Color.Flip())
		}
		if err := check(g); err != nil {
			return res, err
		}
	}
	if !res.Cutoff {
		st.Passed++
	}
	return res, nil
}

// move plays a uniformly random legal move, returning false if the
// player should pass instead.
func move(g *goban.Game, r *rand.Rand, passRate float64, st *Stats) bool {
	if r.Float64() < passRate {
		return false
	}
	b := g.Board()
	var empty []goban.Point
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			if p := (goban.Point{Row: row, Col: col}); b.At(p) == goban.NoColor {
				empty = append(empty, p)
			}
		}
	}
	r.Shuffle(len(empty), func(i, j int) { empty[i], empty[j] = empty[j], empty[i] })
	for _, p := range empty {
		err := g.Play(p)
		switch {
		case err == nil:
			return true
		case errors.Is(err, goban.ErrSuicide):
			st.Rejected.Suicide++
		case errors.Is(err, goban.ErrKo):
			st.Rejected.Ko++
		case errors.Is(err, goban.ErrOccupied):
			st.Rejected.Occupied++
		default:
			return false
		}
	}
	return false
}

// check verifies that the history matches the ply count and that
// undoing the last ply and replaying it reproduces the same position.
// Undoing the first ply after a handicap clears the handicap stones,
// so that ply is not replayed.
func check(g *goban.Game) error {
	ply := g.Ply()
	if g.History().Len() != ply || len(g.Records()) != ply {
		return fmt.Errorf("history has %d boards at ply %d", g.History().Len(), ply)
	}
	if ply == 1 && g.HandicapPlaced() {
		return nil
	}
	board, toMove := g.Board(), g.ToMove()
	last := g.History().Record(ply - 1)
	if err := g.Rollback(1); err != nil {
		return errors.Wrap(err, "rollback")
	}
	if g.ToMove() != last.Color {
		return fmt.Errorf("ply %d: %s to move after rollback, want %s", ply, g.ToMove(), last.Color)
	}
	if last.Pass {
		g.Pass()
	} else if err := g.Play(last.Point); err != nil {
		return errors.Wrapf(err, "ply %d: replay %s", ply, g.Vertex(last.Point))
	}
	if !g.Board().Equal(board) || g.ToMove() != toMove {
		return fmt.Errorf("ply %d: replaying %s gave a different position", ply, g.Vertex(last.Point))
	}
	return nil
}
