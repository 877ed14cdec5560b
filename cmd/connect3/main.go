package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
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

	columns := flag.Int("columns", cfg.Connect3Columns, "width of the grid")
	rows := flag.Int("rows", cfg.Connect3Rows, "height of the grid")
	depth := flag.Int("depth", cfg.SearchDepth, "lookahead in plies, 0 to solve the game outright")
	first := flag.Bool("first", true, "whether the computer moves first")
	auto := flag.Bool("auto", false, "replace the human with a random opponent")
	level := flag.String("log", cfg.LogLevel, "log level: trace, debug, info, warn or error")
	flag.Parse()

	setupLogging(*level)

	if *columns < 1 || *rows < 1 {
		log.Fatal().Msgf("the grid wants positive dimensions, got %dx%d", *columns, *rows)
	}

	fmt.Printf("Connect-3: drop pieces into columns; three in a row wins. I play %c, you play %c.\n",
		game.Symbols[0], game.Symbols[1])

	computer := &engine.SolverPlayer{Solver: newSolver(*depth), Narrate: narrate}
	match := engine.NewMatch(game.NewConnect3State(*columns, *rows, nil, *first), computer, opponentPlayer(*auto))
	score, err := match.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("match aborted")
	}

	fmt.Printf("\n%s\n", match.State())
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

// humanPlayer keeps prompting until it reads a column with room to spare.
func humanPlayer(in *bufio.Scanner) engine.PlayerFunc {
	return func(state game.State) (game.State, error) {
		connect3 := state.(*game.Connect3State)
		fmt.Printf("\n%s\n", connect3)
		for {
			fmt.Print("your column: ")
			if !in.Scan() {
				return nil, fmt.Errorf("input closed before the game finished")
			}
			column, err := strconv.Atoi(in.Text())
			if err != nil {
				fmt.Println("enter a column number, starting from 0 on the left")
				continue
			}
			move := game.Connect3Move{Column: column}
			if !connect3.Legal(move) {
				fmt.Printf("you cannot %s\n", move)
				continue
			}
			return connect3.Apply(move), nil
		}
	}
}

func narrate(before, after game.State, forecast game.Score) {
	if move, ok := game.Connect3Diff(before.(*game.Connect3State), after.(*game.Connect3State)); ok {
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
