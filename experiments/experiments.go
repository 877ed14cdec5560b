// Package experiments measures how much alpha-beta pruning and the
// transposition table help the searcher, by self-playing the three games
// under each configuration and recording the per-move search effort.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/solb/cs4gamesolver/engine"
	"github.com/solb/cs4gamesolver/experiments/metrics"
	"github.com/solb/cs4gamesolver/game"
	"github.com/solb/cs4gamesolver/searcher"
)

// SearcherConfigs are the configurations under comparison. Every verdict must
// agree across them; only the effort may differ.
var SearcherConfigs = []metrics.SearcherConfig{
	{ID: 1, Label: "plain"},
	{ID: 2, Label: "alphabeta", AlphaBeta: true},
	{ID: 3, Label: "alphabeta+table", AlphaBeta: true, Table: true},
}

type position struct {
	name  string
	start game.State
}

// positions are sized so that even the plain searcher solves them quickly.
func positions() []position {
	return []position{
		{"kayles", game.NewKaylesState([]int{2, 3}, true)},
		{"crossout", game.NewCrossoutState(6, 5, true)},
		{"connect3", game.NewConnect3State(3, 3, nil, true)},
	}
}

// measured is the slice of the searcher the experiment consumes: moves plus
// the effort behind them.
type measured interface {
	engine.Solver
	Metrics() searcher.MoveMetrics
}

func newSolver(config metrics.SearcherConfig) measured {
	options := []searcher.Option{}
	if config.AlphaBeta {
		options = append(options, searcher.WithAlphaBeta())
	}
	if config.Table {
		options = append(options, searcher.WithTable(0))
	}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	return searcher.NewMinimax(options...)
}

// RunSearchComparison self-plays every position under every searcher
// configuration and writes the records as CSV files under root.
func RunSearchComparison(root string) error {
	writer, err := metrics.NewWriter(root, "search_comparison")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteSearcherConfigs(SearcherConfigs); err != nil {
		return fmt.Errorf("failed to store searcher configs: %w", err)
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msg("starting search comparison experiment...")

	for _, config := range SearcherConfigs {
		for _, pos := range positions() {
			count++
			log.Info().Msgf("self-playing %s with the %s searcher...", pos.name, config.Label)

			gameRecord, gameMoves, err := runMatch(count, config, pos)
			if err != nil {
				return fmt.Errorf("match %d failed: %w", count, err)
			}
			gameRecords = append(gameRecords, gameRecord)
			moveRecords = append(moveRecords, gameMoves...)

			log.Info().Msgf("completed %s with the %s searcher: %s in %d move(s)",
				pos.name, config.Label, gameRecord.Outcome, gameRecord.Moves)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}

	log.Info().Msgf("completed search comparison experiment, records in %s", writer.Dir())
	return nil
}

// runMatch plays one self-play match where the same solver chooses for both
// sides, recording each move's search effort.
func runMatch(id int, config metrics.SearcherConfig, pos position) (metrics.GameRecord, []metrics.MoveRecord, error) {
	solver := newSolver(config)
	moves := []metrics.MoveRecord{}
	step := 0

	player := engine.PlayerFunc(func(state game.State) (game.State, error) {
		next, _, err := solver.FindMove(state)
		if err != nil {
			return nil, err
		}
		step++
		mover := "human"
		if state.ComputersTurn() {
			mover = "computer"
		}
		moves = append(moves, metrics.MoveRecord{
			Game:        id,
			Step:        step,
			Mover:       mover,
			MoveMetrics: solver.Metrics(),
		})
		return next, nil
	})

	start := time.Now()
	score, err := engine.NewMatch(pos.start, player, player).Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	return metrics.GameRecord{
		ID:        id,
		Searcher:  config.ID,
		Game:      pos.name,
		Outcome:   score.String(),
		Moves:     step,
		StartTime: start,
		EndTime:   time.Now(),
		Duration:  time.Since(start),
	}, moves, nil
}
