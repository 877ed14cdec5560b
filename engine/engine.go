package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/solb/cs4gamesolver/game"
)

// MaxMoves guards against a match that never finishes; every supported game
// ends far earlier.
const MaxMoves = 10000

// Player picks one of the current position's successors.
type Player interface {
	Act(state game.State) (game.State, error)
}

// PlayerFunc adapts a bare function to the Player interface.
type PlayerFunc func(state game.State) (game.State, error)

func (f PlayerFunc) Act(state game.State) (game.State, error) {
	return f(state)
}

// Match runs one game between the computer and its opponent.
type Match struct {
	state    game.State
	computer Player
	opponent Player
	moves    int
}

// NewMatch wires a starting position to the two players.
func NewMatch(start game.State, computer, opponent Player) *Match {
	if start == nil {
		panic("engine: match needs a starting state")
	}
	if computer == nil || opponent == nil {
		panic("engine: match needs both players")
	}
	return &Match{state: start, computer: computer, opponent: opponent}
}

// State returns the current position.
func (m *Match) State() game.State {
	return m.state
}

// Moves returns how many plies have been played.
func (m *Match) Moves() int {
	return m.moves
}

// Run alternates turns until the game ends, then returns the verdict from the
// computer's perspective.
func (m *Match) Run() (game.Score, error) {
	log.Info().Msgf("match starting: %s", m.state)

	for !m.state.GameOver() {
		if m.moves >= MaxMoves {
			return game.Tie, fmt.Errorf("engine: no verdict after %d moves", MaxMoves)
		}
		if err := m.step(); err != nil {
			return game.Tie, err
		}
	}

	score := m.state.Score()
	log.Info().Msgf("match over after %d move(s): %s", m.moves, score)
	return score, nil
}

// step lets the player on turn choose among the legal successors and advances
// the match to their choice.
func (m *Match) step() error {
	player, mover := m.opponent, "human"
	if m.state.ComputersTurn() {
		player, mover = m.computer, "computer"
	}

	next, err := player.Act(m.state)
	if err != nil {
		return fmt.Errorf("%s failed to move: %w", mover, err)
	}
	if !legalSuccessor(m.state, next) {
		return fmt.Errorf("%s chose an illegal successor", mover)
	}

	log.Debug().Msgf("%s moved to: %s", mover, next)
	m.state = next
	m.moves++
	return nil
}

// legalSuccessor reports whether next is one of state's successors, matching
// by hash first and structural equality second.
func legalSuccessor(state, next game.State) bool {
	if next == nil {
		return false
	}
	for _, successor := range state.Successors() {
		if successor.Hash() == next.Hash() && successor.Equals(next) {
			return true
		}
	}
	return false
}
