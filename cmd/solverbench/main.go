package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/solb/cs4gamesolver/config"
	"github.com/solb/cs4gamesolver/experiments"
)

func main() {
	cfg := config.LoadConfig()

	out := flag.String("out", "results", "directory to write the CSV records under")
	level := flag.String("log", cfg.LogLevel, "log level: trace, debug, info, warn or error")
	flag.Parse()

	setupLogging(*level)

	if err := experiments.RunSearchComparison(*out); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}

func setupLogging(name string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, staying at info", name)
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}
