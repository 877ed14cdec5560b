package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/solb/cs4gamesolver/game"
	"github.com/solb/cs4gamesolver/searcher"
)

func TestMatchComputerClearsLastGroup(t *testing.T) {
	start := game.NewKaylesState([]int{2}, true)
	idle := PlayerFunc(func(state game.State) (game.State, error) {
		return nil, fmt.Errorf("the human should never be consulted here")
	})
	match := NewMatch(start, &SolverPlayer{Solver: searcher.NewMinimax()}, idle)

	score, err := match.Run()

	require.NoError(t, err, "A one-move win should run cleanly")
	require.Equal(t, game.Victory, score, "Clearing the final pair should win for the computer")
	require.Equal(t, 1, match.Moves(), "The game should have taken a single move")
	require.True(t, match.State().GameOver(), "The match should stop on a finished position")
}

func TestMatchAlternatesTurns(t *testing.T) {
	firstChoice := PlayerFunc(func(state game.State) (game.State, error) {
		return state.Successors()[0], nil
	})
	match := NewMatch(game.NewKaylesState([]int{1, 1}, true), firstChoice, firstChoice)

	score, err := match.Run()

	require.NoError(t, err)
	require.Equal(t, game.Loss, score, "The human removes the last pin of [1 1], so the computer loses")
	require.Equal(t, 2, match.Moves(), "Two pins should take two moves to clear")
}

func TestMatchFinishedAtTheStart(t *testing.T) {
	exploding := PlayerFunc(func(state game.State) (game.State, error) {
		return nil, fmt.Errorf("no one should move")
	})
	match := NewMatch(game.NewKaylesState([]int{0}, true), exploding, exploding)

	score, err := match.Run()

	require.NoError(t, err, "A finished start needs no moves at all")
	require.Equal(t, game.Loss, score, "The mover on a cleared board has already lost")
	require.Zero(t, match.Moves())
}

func TestMatchRejectsIllegalSuccessor(t *testing.T) {
	cheat := PlayerFunc(func(state game.State) (game.State, error) {
		return game.NewKaylesState([]int{5}, true), nil
	})
	match := NewMatch(game.NewKaylesState([]int{1}, false), cheat, cheat)

	_, err := match.Run()

	require.ErrorContains(t, err, "human chose an illegal successor",
		"A move outside the successor set should abort the match")
}

func TestMatchWrapsPlayerErrors(t *testing.T) {
	broken := PlayerFunc(func(state game.State) (game.State, error) {
		return nil, fmt.Errorf("out of ideas")
	})
	match := NewMatch(game.NewKaylesState([]int{3}, true), broken, broken)

	_, err := match.Run()

	require.ErrorContains(t, err, "computer failed to move")
	require.ErrorContains(t, err, "out of ideas", "The player's own error should survive the wrapping")
}

func TestMatchConstructorGuards(t *testing.T) {
	player := PlayerFunc(func(state game.State) (game.State, error) {
		return state.Successors()[0], nil
	})

	require.Panics(t, func() { NewMatch(nil, player, player) },
		"A match needs a starting state")
	require.Panics(t, func() { NewMatch(game.NewKaylesState([]int{1}, true), nil, player) },
		"A match needs a computer player")
	require.Panics(t, func() { NewMatch(game.NewKaylesState([]int{1}, true), player, nil) },
		"A match needs an opponent")
}

func TestSolverAgainstRandomOpponent(t *testing.T) {
	start := game.NewCrossoutState(4, 5, true)
	computer := &SolverPlayer{Solver: searcher.NewMinimax(searcher.WithAlphaBeta(), searcher.WithTable(0))}
	opponent := &RandomPlayer{Rand: rand.New(rand.NewSource(7))}

	score, err := NewMatch(start, computer, opponent).Run()

	require.NoError(t, err, "A demo match should play out without incident")
	require.NotEqual(t, game.Tie, score, "Crossout never ends even")
}

func TestSolverPlayerNarration(t *testing.T) {
	start := game.NewKaylesState([]int{2}, true)
	var before, after game.State
	var forecast game.Score
	player := &SolverPlayer{
		Solver: searcher.NewMinimax(),
		Narrate: func(b, a game.State, f game.Score) {
			before, after, forecast = b, a, f
		},
	}

	next, err := player.Act(start)

	require.NoError(t, err)
	require.True(t, before.Equals(start), "Narration should see the position that was searched")
	require.True(t, after.Equals(next), "Narration should see the chosen successor")
	require.True(t, after.Equals(game.NewKaylesState([]int{0}, false)),
		"The solver should clear the pair outright")
	require.Equal(t, game.Victory, forecast)
}

func TestRandomPlayerNeedsAMove(t *testing.T) {
	player := &RandomPlayer{Rand: rand.New(rand.NewSource(1))}

	_, err := player.Act(game.NewKaylesState([]int{0}, true))

	require.ErrorContains(t, err, "no move to make")
}

func TestLegalSuccessorMembership(t *testing.T) {
	state := game.NewKaylesState([]int{2, 1}, true)

	require.True(t, legalSuccessor(state, state.Successors()[0]))
	require.True(t, legalSuccessor(state, game.NewKaylesState([]int{2, 0}, false)),
		"An independently built copy of a successor should count as legal")
	require.False(t, legalSuccessor(state, nil))
	require.False(t, legalSuccessor(state, state), "Standing still is not a move")
	require.False(t, legalSuccessor(state, game.NewKaylesState([]int{2, 1}, false)),
		"Passing the turn without removing pins is not a move")
}
