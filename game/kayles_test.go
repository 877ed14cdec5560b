package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKaylesTerminalPositions(t *testing.T) {
	t.Run("empty row with computer to move", func(t *testing.T) {
		state := NewKaylesState(nil, true)

		require.True(t, state.GameOver(), "A row with no pins should be over")
		require.Equal(t, Loss, state.Score(), "The mover unable to act should lose")
		require.Empty(t, state.Successors(), "A finished game should offer no moves")
	})

	t.Run("zeroed groups count as an empty row", func(t *testing.T) {
		state := NewKaylesState([]int{0, 0, 0}, false)

		require.True(t, state.GameOver(), "Groups of zero pins should not keep the game alive")
		require.Equal(t, Victory, state.Score(), "The human unable to act should hand the computer the win")
	})

	t.Run("a single standing pin keeps the game open", func(t *testing.T) {
		state := NewKaylesState([]int{0, 1}, true)

		require.False(t, state.GameOver(), "A standing pin should keep the game open")
		require.Equal(t, Tie, state.Score(), "An unfinished game should read as a tie")
	})
}

func TestKaylesSinglePinGame(t *testing.T) {
	state := NewKaylesState([]int{1}, true)

	successors := state.Successors()

	require.Len(t, successors, 1, "One pin should allow exactly one move")
	want := NewKaylesState([]int{0}, false)
	require.True(t, want.Equals(successors[0]), "Taking the last pin should leave an empty group for the human")
	require.True(t, successors[0].GameOver(), "Taking the last pin should end the game")
	require.Equal(t, Victory, successors[0].Score(), "Taking the last pin should win for the computer")
}

func TestKaylesSplitMove(t *testing.T) {
	state := NewKaylesState([]int{3}, true)

	next := state.Apply(KaylesMove{Group: 0, Offset: 1, Taken: 1})

	want := NewKaylesState([]int{1, 1}, false)
	require.True(t, want.Equals(next), "Knocking out the middle pin should split the group in two")
	require.False(t, next.ComputersTurn(), "The move should pass the turn to the human")
}

func TestKaylesSuccessorEnumeration(t *testing.T) {
	t.Run("three pins in one group", func(t *testing.T) {
		state := NewKaylesState([]int{3}, true)

		successors := state.Successors()

		// Offsets ascend and within each offset the pin count ascends.
		wants := [][]int{{2}, {1}, {1, 1}, {1}, {2}}
		require.Len(t, successors, len(wants), "Three pins should allow five moves")
		for i, want := range wants {
			require.True(t, NewKaylesState(want, false).Equals(successors[i]),
				"Successor %d should be %v with the human up", i, want)
			require.False(t, successors[i].ComputersTurn(), "Every successor should flip the turn")
		}
	})

	t.Run("empty groups offer no moves", func(t *testing.T) {
		state := NewKaylesState([]int{0, 2}, false)

		successors := state.Successors()

		wants := [][]int{{0, 1}, {0, 0}, {0, 1}}
		require.Len(t, successors, len(wants), "Only the standing pins should produce moves")
		for i, want := range wants {
			require.True(t, NewKaylesState(want, true).Equals(successors[i]),
				"Successor %d should be %v with the computer up", i, want)
		}
	})
}

func TestKaylesLegalMoves(t *testing.T) {
	state := NewKaylesState([]int{3, 0}, true)

	require.True(t, state.Legal(KaylesMove{Group: 0, Offset: 0, Taken: 2}), "Two adjacent pins should be takeable")
	require.True(t, state.Legal(KaylesMove{Group: 0, Offset: 2, Taken: 1}), "The last pin of a group should be takeable")
	require.False(t, state.Legal(KaylesMove{Group: 0, Offset: 2, Taken: 2}), "Moves must not run past the end of a group")
	require.False(t, state.Legal(KaylesMove{Group: 0, Offset: 0, Taken: 3}), "Taking three pins should never be legal")
	require.False(t, state.Legal(KaylesMove{Group: 0, Offset: 0, Taken: 0}), "Taking nothing should never be legal")
	require.False(t, state.Legal(KaylesMove{Group: 1, Offset: 0, Taken: 1}), "Empty groups should offer no moves")
	require.False(t, state.Legal(KaylesMove{Group: 2, Offset: 0, Taken: 1}), "Missing groups should offer no moves")
	require.False(t, state.Legal(KaylesMove{Group: -1, Offset: 0, Taken: 1}), "Negative group indices should be rejected")

	require.Panics(t, func() { state.Apply(KaylesMove{Group: 0, Offset: 3, Taken: 1}) },
		"Applying an illegal move should panic")
}

func TestKaylesConstructorRejectsNegativePins(t *testing.T) {
	require.Panics(t, func() { NewKaylesState([]int{2, -1}, true) },
		"A negative pin count should be refused outright")
}

func TestKaylesDiff(t *testing.T) {
	t.Run("edge removal comes back with offset zero", func(t *testing.T) {
		first := NewKaylesState([]int{3}, true)
		next := first.Apply(KaylesMove{Group: 0, Offset: 2, Taken: 1})

		move, ok := KaylesDiff(first, next)

		require.True(t, ok, "A legal edge removal should be recognized")
		require.Equal(t, KaylesMove{Group: 0, Offset: 0, Taken: 1}, move,
			"The recovered move should name the canonical offset")
		require.True(t, first.Apply(move).Equals(next), "The recovered move should reproduce the successor")
	})

	t.Run("split removal comes back exactly", func(t *testing.T) {
		first := NewKaylesState([]int{3, 4}, true)
		next := first.Apply(KaylesMove{Group: 1, Offset: 1, Taken: 2})

		move, ok := KaylesDiff(first, next)

		require.True(t, ok, "A legal split should be recognized")
		require.Equal(t, KaylesMove{Group: 1, Offset: 1, Taken: 2}, move,
			"A split pins down the exact offset and count")
	})

	t.Run("unrelated states are not subsequent", func(t *testing.T) {
		base := NewKaylesState([]int{2, 2}, true)

		sameTurn := NewKaylesState([]int{2, 1}, true)
		require.False(t, KaylesAreSubsequent(base, sameTurn), "States on the same turn cannot be subsequent")

		twoGroups := NewKaylesState([]int{1, 1}, false)
		require.False(t, KaylesAreSubsequent(base, twoGroups), "A move cannot touch two groups")

		tooMany := NewKaylesState([]int{2}, false)
		require.False(t, KaylesAreSubsequent(NewKaylesState([]int{5}, true), tooMany),
			"A move cannot take three pins")

		zeroSplit := NewKaylesState([]int{1, 1}, false)
		require.False(t, KaylesAreSubsequent(NewKaylesState([]int{2}, true), zeroSplit),
			"A split must account for the pins taken")

		grownTail := NewKaylesState([]int{2, 2, 1}, false)
		require.False(t, KaylesAreSubsequent(base, grownTail), "A new trailing group cannot appear from nowhere")

		_, ok := KaylesDiff(base, sameTurn)
		require.False(t, ok, "Diff should refuse states that are not subsequent")
	})

	t.Run("every successor round-trips through diff", func(t *testing.T) {
		first := NewKaylesState([]int{3, 4, 5}, true)

		for i, next := range first.Successors() {
			require.True(t, KaylesAreSubsequent(first, next.(*KaylesState)),
				"Successor %d should be recognized as subsequent", i)
			move, ok := KaylesDiff(first, next.(*KaylesState))
			require.True(t, ok, "Successor %d should yield a move", i)
			require.True(t, first.Legal(move), "Recovered move %d should be legal on the parent", i)
			require.True(t, first.Apply(move).Equals(next), "Recovered move %d should reproduce the successor", i)
		}
	})
}

func TestKaylesCopyFrom(t *testing.T) {
	t.Run("assignment makes the states equal", func(t *testing.T) {
		dst := NewKaylesState([]int{1}, false)
		src := NewKaylesState([]int{3, 4, 5}, true)

		got := dst.CopyFrom(src)

		require.Same(t, dst, got, "Assignment should hand back the destination")
		require.True(t, dst.Equals(src), "Assignment should make the states equal")
		require.Equal(t, src.Hash(), dst.Hash(), "Assignment should carry the cached hash")
	})

	t.Run("self assignment changes nothing", func(t *testing.T) {
		state := NewKaylesState([]int{3, 4, 5}, true)
		before := state.Hash()

		got := state.CopyFrom(state)

		require.Same(t, state, got, "Self assignment should hand back the state")
		require.True(t, state.Equals(NewKaylesState([]int{3, 4, 5}, true)), "Self assignment should not disturb the position")
		require.Equal(t, before, state.Hash(), "Self assignment should not disturb the hash")
	})
}

func TestKaylesHashAndEquality(t *testing.T) {
	t.Run("identical constructions agree", func(t *testing.T) {
		a := NewKaylesState([]int{3, 4, 5}, true)
		b := NewKaylesState([]int{3, 4, 5}, true)

		require.True(t, a.Equals(b), "Identical positions should be equal")
		require.Equal(t, a.Hash(), b.Hash(), "Equal states should share a hash")
	})

	t.Run("the turn is part of the identity", func(t *testing.T) {
		a := NewKaylesState([]int{3, 4, 5}, true)
		b := NewKaylesState([]int{3, 4, 5}, false)

		require.False(t, a.Equals(b), "The same pins on the other turn should differ")
		require.NotEqual(t, a.Hash(), b.Hash(), "The turn bit should show up in the hash")
	})

	t.Run("group order is part of the identity", func(t *testing.T) {
		a := NewKaylesState([]int{2, 0}, true)
		b := NewKaylesState([]int{0, 2}, true)

		require.False(t, a.Equals(b), "Mirrored rows should be distinct states")
	})

	t.Run("other games never compare equal", func(t *testing.T) {
		a := NewKaylesState([]int{3}, true)
		b := NewCrossoutState(4, 3, true)

		require.False(t, a.Equals(b), "States of different games should never be equal")
	})
}

func TestKaylesAccessorsAndString(t *testing.T) {
	state := NewKaylesState([]int{3, 0, 2}, true)

	require.Equal(t, 3, state.Groups(), "Empty groups should still be counted")
	require.Equal(t, 0, state.PinsInGroup(1), "Accessors should see empty groups")
	require.Equal(t, -1, state.PinsInGroup(3), "Missing groups should read as -1")
	require.Equal(t, -1, state.PinsInGroup(-1), "Negative indices should read as -1")
	require.Equal(t, "It is the computer's turn and the pin groups are: 3 0 2", state.String(),
		"The synopsis should list every group")
}
