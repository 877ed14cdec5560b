package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/solb/cs4gamesolver/config"
	"github.com/solb/cs4gamesolver/engine"
	"github.com/solb/cs4gamesolver/game"
	"github.com/solb/cs4gamesolver/searcher"
)

func main() {
	cfg := config.LoadConfig()

	tiles := flag.Int("tiles", cfg.CrossoutTiles, "highest tile on the board")
	max := flag.Int("max", cfg.CrossoutMaxSum, "largest sum a move may cross out")
	depth := flag.Int("depth", cfg.SearchDepth, "lookahead in plies, 0 to solve the game outright")
	first := flag.Bool("first", true, "whether the computer moves first")
	auto := flag.Bool("auto", false, "replace the human with a random opponent")
	level := flag.String("log", cfg.LogLevel, "log level: trace, debug, info, warn or error")
	flag.Parse()

	setupLogging(*level)

	if *tiles < 1 {
		log.Fatal().Msgf("-tiles wants a positive count, got %d", *tiles)
	}
	if *max < 1 {
		log.Fatal().Msgf("-max wants a positive sum, got %d", *max)
	}

	fmt.Printf("Crossout: strike one tile or two different ones summing to at most %d; whoever cannot move loses.\n", *max)

	computer := &engine.SolverPlayer{Solver: newSolver(*depth), Narrate: narrate}
	score, err := engine.NewMatch(game.NewCrossoutState(*max, *tiles, *first), computer, opponentPlayer(*auto)).Run()
	if err != nil {
		log.Fatal().Err(err).Msg("match aborted")
	}
	printOutcome(score)
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

func newSolver(depth int) engine.Solver {
	options := []searcher.Option{searcher.WithAlphaBeta(), searcher.WithTable(0)}
	if depth > 0 {
		options = append(options, searcher.WithDepth(depth))
	}
	return searcher.NewMinimax(options...)
}

func opponentPlayer(auto bool) engine.Player {
	if auto {
		return &engine.RandomPlayer{Rand: rand.New(rand.NewSource(uint64(time.Now().UnixNano())))}
	}
	return humanPlayer(bufio.NewScanner(os.Stdin))
}

// humanPlayer keeps prompting until it reads a legal strike of one or two
// tiles.
func humanPlayer(in *bufio.Scanner) engine.PlayerFunc {
	return func(state game.State) (game.State, error) {
		crossout := state.(*game.CrossoutState)
		fmt.Printf("\n%s\n", crossout)
		for {
			fmt.Print("your move (tile, or two tiles): ")
			if !in.Scan() {
				return nil, fmt.Errorf("input closed before the game finished")
			}
			values, err := config.ParseInts(in.Text())
			if err != nil || len(values) < 1 || len(values) > 2 {
				fmt.Println("enter one or two tile numbers, e.g. 7 or 2 5")
				continue
			}
			move := game.CrossoutMove{First: values[0]}
			if len(values) == 2 {
				move.Second = values[1]
			}
			if !crossout.Legal(move) {
				fmt.Printf("you cannot %s\n", move)
				continue
			}
			return crossout.Apply(move), nil
		}
	}
}

func narrate(before, after game.State, forecast game.Score) {
	if move, ok := game.CrossoutDiff(before.(*game.CrossoutState), after.(*game.CrossoutState)); ok {
		fmt.Printf("I'll %s. %s\n", move, forecastLine(forecast))
	}
}

func forecastLine(forecast game.Score) string {
	switch forecast {
	case game.Victory:
		return "I expect to win."
	case game.Loss:
		return "You could still beat me."
	default:
		return "Nothing is decided yet."
	}
}

func printOutcome(score game.Score) {
	switch score {
	case game.Victory:
		fmt.Println("I win!")
	case game.Loss:
		fmt.Println("You win!")
	default:
		fmt.Println("We tied.")
	}
}
