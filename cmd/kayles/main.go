package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
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

	pins := flag.String("pins", intsLine(cfg.KaylesPins), "space-separated pin group sizes")
	depth := flag.Int("depth", cfg.SearchDepth, "lookahead in plies, 0 to solve the game outright")
	first := flag.Bool("first", true, "whether the computer moves first")
	auto := flag.Bool("auto", false, "replace the human with a random opponent")
	level := flag.String("log", cfg.LogLevel, "log level: trace, debug, info, warn or error")
	flag.Parse()

	setupLogging(*level)

	groups, err := config.ParseInts(*pins)
	if err != nil || len(groups) == 0 {
		log.Fatal().Msgf("-pins wants space-separated group sizes, got %q", *pins)
	}
	for _, size := range groups {
		if size < 0 {
			log.Fatal().Msgf("-pins wants non-negative group sizes, got %d", size)
		}
	}

	fmt.Println("Kayles: bowl out one pin or two adjacent pins; whoever cannot move loses.")

	computer := &engine.SolverPlayer{Solver: newSolver(*depth), Narrate: narrate}
	score, err := engine.NewMatch(game.NewKaylesState(groups, *first), computer, opponentPlayer(*auto)).Run()
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

// humanPlayer keeps prompting until it reads a legal move.
func humanPlayer(in *bufio.Scanner) engine.PlayerFunc {
	return func(state game.State) (game.State, error) {
		kayles := state.(*game.KaylesState)
		fmt.Printf("\n%s\n", kayles)
		for {
			fmt.Print("your move (group offset taken): ")
			if !in.Scan() {
				return nil, fmt.Errorf("input closed before the game finished")
			}
			values, err := config.ParseInts(in.Text())
			if err != nil || len(values) != 3 {
				fmt.Println("enter three numbers, e.g. 0 0 2 to take the first two pins of group 0")
				continue
			}
			move := game.KaylesMove{Group: values[0], Offset: values[1], Taken: values[2]}
			if !kayles.Legal(move) {
				fmt.Printf("you cannot %s\n", move)
				continue
			}
			return kayles.Apply(move), nil
		}
	}
}

func narrate(before, after game.State, forecast game.Score) {
	if move, ok := game.KaylesDiff(before.(*game.KaylesState), after.(*game.KaylesState)); ok {
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

func intsLine(values []int) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = strconv.Itoa(value)
	}
	return strings.Join(parts, " ")
}
