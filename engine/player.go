package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/solb/cs4gamesolver/game"
)

// Solver is the slice of the searcher a SolverPlayer consults.
type Solver interface {
	FindMove(state game.State) (game.State, game.Score, error)
}

// SolverPlayer plays whatever its solver recommends. Narrate, when set, is
// told about each chosen transition so a front end can describe the move.
type SolverPlayer struct {
	Solver  Solver
	Narrate func(before, after game.State, forecast game.Score)
}

func (p *SolverPlayer) Act(state game.State) (game.State, error) {
	next, forecast, err := p.Solver.FindMove(state)
	if err != nil {
		return nil, err
	}

	log.Info().Msgf("solver forecasts a %s", forecast)
	if p.Narrate != nil {
		p.Narrate(state, next, forecast)
	}
	return next, nil
}

// RandomPlayer picks uniformly among the legal successors. It stands in for
// a human opponent in unattended matches.
type RandomPlayer struct {
	Rand *rand.Rand
}

func (p *RandomPlayer) Act(state game.State) (game.State, error) {
	successors := state.Successors()
	if len(successors) == 0 {
		return nil, fmt.Errorf("engine: no move to make on %s", state)
	}
	return successors[p.Rand.Intn(len(successors))], nil
}
