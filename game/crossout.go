package game

import (
	"fmt"
	"strconv"
	"strings"
)

// CrossoutMove strikes the tile valued First and, when Second is nonzero, the
// tile valued Second as well.
type CrossoutMove struct {
	First  int
	Second int
}

func (m CrossoutMove) String() string {
	if m.Second == 0 {
		return fmt.Sprintf("cross out %d", m.First)
	}
	return fmt.Sprintf("cross out %d and %d", m.First, m.Second)
}

// CrossoutState is a tray of tiles numbered from 1, each either still present
// or already crossed out. A move strikes one or two distinct present tiles
// whose values sum to at most the tray's maxSum. Whoever cannot move loses.
type CrossoutState struct {
	maxSum   int
	tray     []bool
	ourTurn  bool
	hashCode StateHash
}

// NewCrossoutState sets up a game with tiles 1 through highValue all present.
// maxSum caps the total value struck in one move and must leave tile 1
// playable, otherwise the game could never start.
func NewCrossoutState(maxSum, highValue int, weAreUp bool) *CrossoutState {
	if highValue < 1 {
		panic("crossout: need at least one tile")
	}
	if maxSum < 1 {
		panic("crossout: maxSum permits no move at all")
	}
	tray := make([]bool, highValue)
	for i := range tray {
		tray[i] = true
	}
	s := &CrossoutState{maxSum: maxSum, tray: tray, ourTurn: weAreUp}
	s.cacheHash()
	return s
}

// MaxSum returns the cap on the combined value struck in one move.
func (s *CrossoutState) MaxSum() int {
	return s.maxSum
}

// TileCount returns how many tiles the tray started with.
func (s *CrossoutState) TileCount() int {
	return len(s.tray)
}

// Present reports whether the tile with the given value is still uncrossed.
// Values outside the tray are simply absent.
func (s *CrossoutState) Present(value int) bool {
	return value >= 1 && value <= len(s.tray) && s.tray[value-1]
}

// Legal reports whether m may be played on this state.
func (s *CrossoutState) Legal(m CrossoutMove) bool {
	if !s.Present(m.First) {
		return false
	}
	if m.Second == 0 {
		return m.First <= s.maxSum
	}
	return s.Present(m.Second) && m.Second != m.First && m.First+m.Second <= s.maxSum
}

// Apply builds the successor reached by playing m. The move must be legal;
// anything else is a caller bug and panics.
func (s *CrossoutState) Apply(m CrossoutMove) *CrossoutState {
	if !s.Legal(m) {
		panic(fmt.Sprintf("crossout: illegal move %s on state %s", m, s))
	}
	next := &CrossoutState{
		maxSum:  s.maxSum,
		tray:    append([]bool(nil), s.tray...),
		ourTurn: !s.ourTurn,
	}
	next.tray[m.First-1] = false
	if m.Second != 0 {
		next.tray[m.Second-1] = false
	}
	next.cacheHash()
	return next
}

// GameOver reports whether no legal move remains, i.e. every tile small enough
// to strike on its own is already crossed out.
func (s *CrossoutState) GameOver() bool {
	for value := 1; value <= len(s.tray) && value <= s.maxSum; value++ {
		if s.tray[value-1] {
			return false
		}
	}
	return true
}

// Score treats the player unable to move as the loser.
func (s *CrossoutState) Score() Score {
	if !s.GameOver() {
		return Tie
	}
	if s.ourTurn {
		return Loss
	}
	return Victory
}

func (s *CrossoutState) ComputersTurn() bool {
	return s.ourTurn
}

// Successors enumerates single strikes and pairs, first value ascending and
// then second value ascending. A pair shows up once per ordering, so two
// entries describe the same resulting tray; they compare equal and share a
// hash, and the searcher's memoization collapses them.
func (s *CrossoutState) Successors() []State {
	var result []State
	for first := 1; first <= len(s.tray) && first <= s.maxSum; first++ {
		if !s.tray[first-1] {
			continue
		}
		result = append(result, s.Apply(CrossoutMove{First: first}))
		for second := 1; second <= len(s.tray) && first+second <= s.maxSum; second++ {
			if second != first && s.tray[second-1] {
				result = append(result, s.Apply(CrossoutMove{First: first, Second: second}))
			}
		}
	}
	return result
}

func (s *CrossoutState) Hash() StateHash {
	return s.hashCode
}

// cacheHash packs the tray into a presence bitmap sitting under the turn bit,
// then masks to 31 bits.
func (s *CrossoutState) cacheHash() {
	h := uint32(0)
	if s.ourTurn {
		h = 1
	}
	for i := len(s.tray) - 1; i >= 0; i-- {
		h <<= 1
		if s.tray[i] {
			h |= 1
		}
	}
	s.hashCode = StateHash(h & 0x7fffffff)
}

// Equals compares the tray, the turn and maxSum; trays ruled by different caps
// are different games even when the same tiles remain.
func (s *CrossoutState) Equals(other State) bool {
	o, ok := other.(*CrossoutState)
	if !ok || s.maxSum != o.maxSum || s.ourTurn != o.ourTurn || len(s.tray) != len(o.tray) {
		return false
	}
	for i, present := range s.tray {
		if o.tray[i] != present {
			return false
		}
	}
	return true
}

// CopyFrom overwrites s with src's tray, turn and cached hash, then returns s.
// The two states must share a maxSum and a tray length. Assigning a state to
// itself changes nothing.
func (s *CrossoutState) CopyFrom(src *CrossoutState) *CrossoutState {
	if s == src {
		return s
	}
	if s.maxSum != src.maxSum {
		panic("crossout: assignment between states with different maxSum")
	}
	if len(s.tray) != len(src.tray) {
		panic("crossout: assignment between trays of different lengths")
	}
	s.tray = append(s.tray[:0], src.tray...)
	s.ourTurn = src.ourTurn
	s.hashCode = src.hashCode
	return s
}

// String lists only the tiles still standing, keeping the game's traditional
// "pins" vocabulary.
func (s *CrossoutState) String() string {
	var tiles []string
	for value := 1; value <= len(s.tray); value++ {
		if s.tray[value-1] {
			tiles = append(tiles, strconv.Itoa(value))
		}
	}
	return fmt.Sprintf("It is the %s's turn and the pins are: %s",
		turnWord(s.ourTurn), strings.Join(tiles, " "))
}

// CrossoutAreSubsequent reports whether next can follow first in a single
// move: same tray and cap, opposite turn, and one or two tiles newly crossed
// whose values fit under the cap.
func CrossoutAreSubsequent(first, next *CrossoutState) bool {
	if first.maxSum != next.maxSum || len(first.tray) != len(next.tray) || first.ourTurn == next.ourTurn {
		return false
	}
	struck, sum := 0, 0
	for i, present := range first.tray {
		if next.tray[i] && !present {
			return false
		}
		if present && !next.tray[i] {
			struck++
			sum += i + 1
		}
	}
	return struck >= MinTaken && struck <= MaxTaken && sum <= first.maxSum
}

// CrossoutDiff recovers the move played between two subsequent states, the
// struck values in ascending order. ok is false when next cannot follow first.
func CrossoutDiff(first, next *CrossoutState) (CrossoutMove, bool) {
	if !CrossoutAreSubsequent(first, next) {
		return CrossoutMove{}, false
	}
	var move CrossoutMove
	for i, present := range first.tray {
		if present && !next.tray[i] {
			if move.First == 0 {
				move.First = i + 1
			} else {
				move.Second = i + 1
			}
		}
	}
	return move, true
}
