// Package simulation runs batches of games and records their turn streams
// for training-data generation. Instances share nothing; run several runners
// in parallel processes for bigger batches.
package simulation

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/BriScanlon/monopoly-digital-twin/engine"
	"github.com/BriScanlon/monopoly-digital-twin/policy"
)

// Config controls one batch run.
type Config struct {
	Games    int
	Players  int
	Seed     uint64
	MaxTurns int
}

// GameRecord summarizes one completed game.
type GameRecord struct {
	ID        string // run-scoped uuid
	Game      int
	Players   int
	Turns     int
	Winner    int // player with the highest net worth at game end
	NetWorth  int
	StartTime time.Time
	EndTime   time.Time
}

// TurnRecord is one row of training data.
type TurnRecord struct {
	GameID     string
	Game       int
	Turn       int
	Player     int
	Position   int
	Space      string
	Cash       int
	BankCash   int
	NetWorth   int
	Properties int
	InJail     bool
	Decision   string
	Result     string
	Winner     bool // backfilled once the game ends
}

// Runner drives engine games under a fixed pair of policies.
type Runner struct {
	cfg   Config
	buy   policy.BuyPolicy
	trade policy.TradePolicy
}

func NewRunner(cfg Config, buy policy.BuyPolicy, trade policy.TradePolicy) *Runner {
	if cfg.Games <= 0 {
		cfg.Games = 1
	}
	if cfg.Players < 2 {
		cfg.Players = 4
	}
	return &Runner{cfg: cfg, buy: buy, trade: trade}
}

// Run simulates the configured number of games on one engine, resetting it
// between games so the random stream keeps advancing.
func (r *Runner) Run() ([]GameRecord, []TurnRecord) {
	options := []engine.Option{
		engine.WithBuyPolicy(r.buy),
		engine.WithTradePolicy(r.trade),
		engine.WithMaxTurns(r.cfg.MaxTurns),
	}
	if r.cfg.Seed != 0 {
		options = append(options, engine.WithSeed(r.cfg.Seed))
	}
	e := engine.New(r.cfg.Players, options...)

	var gameRecords []GameRecord
	var turnRecords []TurnRecord

	log.Info().Int("games", r.cfg.Games).Int("players", r.cfg.Players).Msg("starting batch")

	for g := 1; g <= r.cfg.Games; g++ {
		if g > 1 {
			e.Reset(r.cfg.Players)
		}

		gameID := uuid.NewString()
		start := time.Now()
		history := []TurnRecord{}

		for !e.GameOver {
			turn := e.TurnCount
			report := e.RunTurn()
			if report.Result == engine.ResultGameOver {
				break
			}
			history = append(history, TurnRecord{
				GameID:     gameID,
				Game:       g,
				Turn:       turn,
				Player:     report.Player,
				Position:   report.Position,
				Space:      report.Space,
				Cash:       report.Cash,
				BankCash:   report.BankCash,
				NetWorth:   e.Players[report.Player].NetWorth(e.Board),
				Properties: len(e.Players[report.Player].Properties),
				InJail:     e.Players[report.Player].InJail,
				Decision:   labelDecision(report),
				Result:     report.Result,
			})
		}

		winner := 0
		best := e.Players[0].NetWorth(e.Board)
		for _, p := range e.Players[1:] {
			if worth := p.NetWorth(e.Board); worth > best {
				best = worth
				winner = p.ID
			}
		}
		for i := range history {
			history[i].Winner = history[i].Player == winner
		}
		turnRecords = append(turnRecords, history...)
		gameRecords = append(gameRecords, GameRecord{
			ID:        gameID,
			Game:      g,
			Players:   r.cfg.Players,
			Turns:     e.TurnCount,
			Winner:    winner,
			NetWorth:  best,
			StartTime: start,
			EndTime:   time.Now(),
		})

		if g%50 == 0 {
			log.Info().Int("game", g).Int("rows", len(turnRecords)).Msg("batch progress")
		}
	}

	log.Info().Int("games", len(gameRecords)).Int("rows", len(turnRecords)).Msg("batch complete")
	return gameRecords, turnRecords
}

// labelDecision tags a turn with the decision the acting player effectively
// made, for downstream training labels.
func labelDecision(report engine.TurnReport) string {
	switch {
	case report.TradeEvent != "":
		return "TRADE_ATTEMPT"
	case report.Result == engine.ResultBought:
		return "BUY"
	case strings.HasPrefix(report.Result, "paid_rent"):
		return "PAY_RENT"
	case strings.Contains(report.Result, "jail"):
		return "JAIL_EVENT"
	}
	return "PASS"
}
