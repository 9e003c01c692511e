package main

import (
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/BriScanlon/monopoly-digital-twin/policy"
	"github.com/BriScanlon/monopoly-digital-twin/simulation"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := simulation.Config{
		Games:    envInt("SIM_GAMES", 500),
		Players:  envInt("SIM_PLAYERS", 4),
		Seed:     uint64(envInt("SIM_SEED", 0)),
		MaxTurns: envInt("SIM_MAX_TURNS", 1000),
	}
	csvPath := envString("SIM_CSV", "monopoly_turns.csv")
	dbPath := envString("SIM_DB", "monopoly_sim.db")

	runner := simulation.NewRunner(cfg, policy.NewHeuristic(), policy.NewHeuristic())
	games, turns := runner.Run()

	logger, err := simulation.NewLogger(csvPath, 10000)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open turn log")
	}
	for _, rec := range turns {
		if err := logger.LogTurn(rec); err != nil {
			log.Fatal().Err(err).Msg("failed to log turn")
		}
	}
	if err := logger.Finalize(); err != nil {
		log.Fatal().Err(err).Msg("failed to finalize turn log")
	}
	log.Info().Str("path", csvPath).Msg("wrote turn log")

	store, err := simulation.OpenStore(dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer store.Close()

	if err := store.SaveGames(games); err != nil {
		log.Fatal().Err(err).Msg("failed to store game records")
	}
	if err := store.SaveTurns(turns); err != nil {
		log.Fatal().Err(err).Msg("failed to store turn records")
	}
	log.Info().Str("path", dbPath).Int("games", len(games)).Msg("stored batch results")
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", key).Str("value", v).Msg("ignoring invalid env value")
	}
	return fallback
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
