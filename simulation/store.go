package simulation

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store persists batch results to SQLite for later analysis.
type Store struct {
	conn *sqlx.DB
}

// OpenStore opens or creates the database at path and applies the schema.
func OpenStore(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		game INTEGER NOT NULL,
		players INTEGER NOT NULL,
		turns INTEGER NOT NULL,
		winner INTEGER NOT NULL,
		net_worth INTEGER NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS turns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		turn INTEGER NOT NULL,
		player INTEGER NOT NULL,
		position INTEGER NOT NULL,
		space TEXT NOT NULL,
		cash INTEGER NOT NULL,
		bank_cash INTEGER NOT NULL,
		net_worth INTEGER NOT NULL,
		properties_owned INTEGER NOT NULL,
		in_jail INTEGER NOT NULL,
		decision TEXT NOT NULL,
		result TEXT NOT NULL,
		winner INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_turns_game ON turns(game_id);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// SaveGames inserts game summaries.
func (s *Store) SaveGames(records []GameRecord) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, rec := range records {
		_, err := tx.Exec(
			`INSERT INTO games (id, game, players, turns, winner, net_worth, start_time, end_time)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.Game, rec.Players, rec.Turns, rec.Winner, rec.NetWorth,
			rec.StartTime.UTC().Format("2006-01-02T15:04:05Z"),
			rec.EndTime.UTC().Format("2006-01-02T15:04:05Z"),
		)
		if err != nil {
			return fmt.Errorf("insert game %s: %w", rec.ID, err)
		}
	}
	return tx.Commit()
}

// SaveTurns inserts turn rows in one transaction.
func (s *Store) SaveTurns(records []TurnRecord) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, rec := range records {
		_, err := tx.Exec(
			`INSERT INTO turns (game_id, turn, player, position, space, cash, bank_cash,
			 net_worth, properties_owned, in_jail, decision, result, winner)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.GameID, rec.Turn, rec.Player, rec.Position, rec.Space, rec.Cash,
			rec.BankCash, rec.NetWorth, rec.Properties, boolToInt(rec.InJail),
			rec.Decision, rec.Result, boolToInt(rec.Winner),
		)
		if err != nil {
			return fmt.Errorf("insert turn: %w", err)
		}
	}
	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
