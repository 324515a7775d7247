package logs

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id varchar primary key,
  time datetime not null,
  height int not null,
  width int not null,
  handicap int not null,
  black varchar,
  white varchar,
  plies int not null,
  moves text not null,
  result varchar not null
)`

const createPlayerView = `
CREATE VIEW IF NOT EXISTS player_games (
  id, player, opponent, color, result, height, width, plies
) AS
SELECT id, black, white, 'black', result, height, width, plies
 FROM games
UNION
SELECT id, white, black, 'white', result, height, width, plies
 FROM games
`

const insertStmt = `
INSERT INTO games (id, time, height, width, handicap, black, white, plies, moves, result)
VALUES (:id, :time, :height, :width, :handicap, :black, :white, :plies, :moves, :result)
`

const selectRecent = `
SELECT id, time, height, width, handicap, black, white, plies, moves, result
FROM games
ORDER BY time DESC
LIMIT ?
`
