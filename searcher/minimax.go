package searcher

import (
	"errors"
	"math"

	"github.com/solb/cs4gamesolver/game"
)

// ErrGameOver reports a move request on a position that offers none.
var ErrGameOver = errors.New("searcher: the game is already over")

type Option func(*Minimax)

// WithDepth bounds the lookahead in plies. Positions still undecided at the
// horizon count as ties. Zero restores the default of solving the game to its
// end.
func WithDepth(plies int) Option {
	return func(m *Minimax) {
		m.depth = plies
	}
}

// WithAlphaBeta prunes branches that cannot change the verdict.
func WithAlphaBeta() Option {
	return func(m *Minimax) {
		m.prune = true
	}
}

// WithTable memoizes verdicts across transpositions and across searches.
// capacity bounds the entry count; zero picks a default.
func WithTable(capacity int) Option {
	return func(m *Minimax) {
		m.table = newTable(capacity)
	}
}

// Minimax is a depth-first solver for the two-player games in the game
// package. Verdicts are always from the computer's point of view: the
// computer maximizes and the human minimizes.
type Minimax struct {
	depth   int
	prune   bool
	table   *table
	metrics metricsCollector
	last    MoveMetrics
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{}
	for _, option := range options {
		option(m)
	}
	return m
}

// Metrics describes the most recent FindMove call.
func (m *Minimax) Metrics() MoveMetrics {
	return m.last
}

// FindMove picks the successor the mover should play and returns it along
// with the verdict of the game beneath it.
func (m *Minimax) FindMove(state game.State) (game.State, game.Score, error) {
	successors := state.Successors()
	if len(successors) == 0 {
		return nil, state.Score(), ErrGameOver
	}

	m.metrics.start()
	limit := m.depth
	if limit <= 0 {
		limit = math.MaxInt
	}
	best, value := m.chooseAmong(state.ComputersTurn(), successors, limit)
	m.last = m.metrics.complete()
	return best, value, nil
}

// chooseAmong scores every successor and keeps the first best one, so equal
// verdicts resolve to the earliest move in enumeration order. The root never
// cuts off: one bound always stays open.
func (m *Minimax) chooseAmong(maximizing bool, successors []game.State, limit int) (game.State, game.Score) {
	alpha, beta := game.Loss-1, game.Victory+1
	best := successors[0]
	value := game.Loss - 1
	if !maximizing {
		value = game.Victory + 1
	}

	for _, successor := range successors {
		score := m.search(successor, limit-1, alpha, beta)
		if maximizing && score > value || !maximizing && score < value {
			value, best = score, successor
		}
		if m.prune {
			if maximizing && value > alpha {
				alpha = value
			}
			if !maximizing && value < beta {
				beta = value
			}
		}
	}
	return best, value
}

// search returns the verdict of state with remaining plies of lookahead left,
// valid within the (alpha, beta) window when pruning is on.
func (m *Minimax) search(state game.State, remaining int, alpha, beta game.Score) game.Score {
	m.metrics.addNode()

	if state.GameOver() {
		return state.Score()
	}
	if remaining <= 0 {
		// The horizon: an undecided game counts as even.
		return game.Tie
	}

	alphaOrig, betaOrig := alpha, beta
	if m.table != nil {
		if score, ok := m.table.probe(state, remaining, alpha, beta); ok {
			m.metrics.addTableHit()
			return score
		}
	}

	maximizing := state.ComputersTurn()
	value := game.Loss - 1
	if !maximizing {
		value = game.Victory + 1
	}

	for _, successor := range state.Successors() {
		score := m.search(successor, remaining-1, alpha, beta)
		if maximizing {
			if score > value {
				value = score
			}
			if m.prune && value > alpha {
				alpha = value
			}
		} else {
			if score < value {
				value = score
			}
			if m.prune && value < beta {
				beta = value
			}
		}
		if m.prune && alpha >= beta {
			m.metrics.addCutoff()
			break
		}
	}

	if m.table != nil {
		flag := flagExact
		if value <= alphaOrig {
			flag = flagUpper
		} else if value >= betaOrig {
			flag = flagLower
		}
		depth := remaining
		if m.depth <= 0 {
			// Exhaustive verdicts hold at any depth.
			depth = math.MaxInt
		}
		m.table.store(state, value, depth, flag)
	}
	return value
}
