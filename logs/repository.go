package logs

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
	"github.com/pkg/errors"

	"github.com/towzeur/go-game-implementation/goban"
)

type Repository struct {
	db *sqlx.DB
}

// Game is one finished game as stored in the log.
type Game struct {
	ID        string    `db:"id"`
	Timestamp time.Time `db:"time"`
	Height    int       `db:"height"`
	Width     int       `db:"width"`
	Handicap  int       `db:"handicap"`
	Black     string    `db:"black"`
	White     string    `db:"white"`
	Plies     int       `db:"plies"`
	Moves     string    `db:"moves"`
	Result    string    `db:"result"`
}

// Record builds a log entry for g with a fresh ID.
func Record(g *goban.Game, black, white, result string) *Game {
	return &Game{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Height:    g.Height(),
		Width:     g.Width(),
		Handicap:  g.Handicap(),
		Black:     black,
		White:     white,
		Plies:     g.Ply(),
		Moves:     goban.FormatRecords(g.Records(), g.Height()),
		Result:    result,
	}
}

func Open(db string) (*Repository, error) {
	sql, err := sqlx.Open("sqlite3", db)
	if err != nil {
		return nil, err
	}
	if _, err = sql.Exec(createGameTable); err != nil {
		sql.Close()
		return nil, errors.Wrap(err, "create games table")
	}
	if _, err = sql.Exec(createPlayerView); err != nil {
		sql.Close()
		return nil, errors.Wrap(err, "create player_games view")
	}
	return &Repository{db: sql}, nil
}

func (r *Repository) InsertGame(g *Game) error {
	_, err := r.db.NamedExec(insertStmt, g)
	return errors.Wrapf(err, "insert game %s", g.ID)
}

func (r *Repository) InsertGames(gs []*Game) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	stmt, err := txn.PrepareNamed(insertStmt)
	if err != nil {
		return errors.Wrap(err, "prepare")
	}
	defer stmt.Close()
	for _, g := range gs {
		if _, e := stmt.Exec(g); e != nil {
			return errors.Wrapf(e, "insert game %s", g.ID)
		}
	}
	return txn.Commit()
}

// ListGames returns up to limit games, most recent first.
func (r *Repository) ListGames(limit int) ([]Game, error) {
	var out []Game
	if err := r.db.Select(&out, selectRecent, limit); err != nil {
		return nil, errors.Wrap(err, "list games")
	}
	return out, nil
}

// Results counts logged games per result for player.
func (r *Repository) Results(player string) (map[string]int, error) {
	rows, err := r.db.Queryx(
		`SELECT result, count(*) FROM player_games WHERE player = ? GROUP BY result`,
		player)
	if err != nil {
		return nil, errors.Wrap(err, "query results")
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var (
			result string
			n      int
		)
		if err := rows.Scan(&result, &n); err != nil {
			return nil, err
		}
		out[result] = n
	}
	return out, rows.Err()
}

func (r *Repository) Close() error {
	return r.db.Close()
}
