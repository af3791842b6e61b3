package storage

import "time"

// GameRecord represents a row in the games table
type GameRecord struct {
	GameID        string    `db:"game_id"`
	InitialQFEN   string    `db:"initial_qfen"`
	WhitePlayerID string    `db:"white_player_id"`
	WhiteName     string    `db:"white_name"`
	BlackPlayerID string    `db:"black_player_id"`
	BlackName     string    `db:"black_name"`
	StartTimeUTC  time.Time `db:"start_time_utc"`
}

// PlayRecord represents a row in the plays table
type PlayRecord struct {
	PlayID      int64     `db:"play_id"`
	GameID      string    `db:"game_id"`
	PlayNumber  int       `db:"play_number"`
	PlayText    string    `db:"play_text"`
	QFENAfter   string    `db:"qfen_after"`
	PlayerColor string    `db:"player_color"` // "w" or "b"
	PlayTimeUTC time.Time `db:"play_time_utc"`
}

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id TEXT PRIMARY KEY,
	initial_qfen TEXT NOT NULL,
	white_player_id TEXT NOT NULL,
	white_name TEXT NOT NULL DEFAULT '',
	black_player_id TEXT NOT NULL,
	black_name TEXT NOT NULL DEFAULT '',
	start_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS plays (
	play_id INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id TEXT NOT NULL,
	play_number INTEGER NOT NULL,
	play_text TEXT NOT NULL,
	qfen_after TEXT NOT NULL,
	player_color TEXT NOT NULL CHECK(player_color IN ('w', 'b')),
	play_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (game_id) REFERENCES games(game_id) ON DELETE CASCADE,
	UNIQUE(game_id, play_number)
);

CREATE INDEX IF NOT EXISTS idx_plays_game_id ON plays(game_id);
CREATE INDEX IF NOT EXISTS idx_games_white_player ON games(white_player_id);
CREATE INDEX IF NOT EXISTS idx_games_black_player ON games(black_player_id);
`
