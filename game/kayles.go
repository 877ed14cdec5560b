package game

import (
	"fmt"
	"strconv"
	"strings"
)

// KaylesMove knocks down Taken adjacent pins from the group at index Group,
// starting Offset pins in from its left end.
type KaylesMove struct {
	Group  int
	Offset int
	Taken  int
}

func (m KaylesMove) String() string {
	return fmt.Sprintf("take %d pin(s) from group %d at offset %d", m.Taken, m.Group, m.Offset)
}

// KaylesState is a row of pin groups frozen at one point in the game. Knocking
// pins out of the middle of a group splits it in two; knocking them off an end
// just shrinks it. Whoever cannot move loses.
type KaylesState struct {
	pins     []int
	ourTurn  bool
	hashCode StateHash
}

// NewKaylesState sets up a game from its starting pin groups. Empty groups are
// allowed and simply never offer a move.
func NewKaylesState(startingPins []int, weAreUp bool) *KaylesState {
	for _, count := range startingPins {
		if count < 0 {
			panic("kayles: negative pin count")
		}
	}
	s := &KaylesState{
		pins:    append([]int(nil), startingPins...),
		ourTurn: weAreUp,
	}
	s.cacheHash()
	return s
}

// Groups returns how many pin groups the row holds, empty ones included.
func (s *KaylesState) Groups() int {
	return len(s.pins)
}

// PinsInGroup returns the pin count of the requested group, or -1 if no such
// group exists.
func (s *KaylesState) PinsInGroup(group int) int {
	if group < 0 || group >= len(s.pins) {
		return -1
	}
	return s.pins[group]
}

// Legal reports whether m may be played on this state.
func (s *KaylesState) Legal(m KaylesMove) bool {
	return m.Group >= 0 && m.Group < len(s.pins) &&
		m.Taken >= MinTaken && m.Taken <= MaxTaken &&
		m.Offset >= 0 && m.Offset+m.Taken <= s.pins[m.Group]
}

// Apply builds the successor reached by playing m. The move must be legal;
// anything else is a caller bug and panics.
func (s *KaylesState) Apply(m KaylesMove) *KaylesState {
	if !s.Legal(m) {
		panic(fmt.Sprintf("kayles: illegal move %s on state %s", m, s))
	}

	size := s.pins[m.Group]
	next := &KaylesState{ourTurn: !s.ourTurn}
	if m.Offset > 0 && m.Offset+m.Taken < size {
		// An interior removal splits the group into its two survivors.
		next.pins = make([]int, 0, len(s.pins)+1)
		next.pins = append(next.pins, s.pins[:m.Group]...)
		next.pins = append(next.pins, m.Offset, size-m.Offset-m.Taken)
		next.pins = append(next.pins, s.pins[m.Group+1:]...)
	} else {
		next.pins = append([]int(nil), s.pins...)
		next.pins[m.Group] -= m.Taken
	}
	next.cacheHash()
	return next
}

// GameOver reports whether every pin has been knocked down.
func (s *KaylesState) GameOver() bool {
	for _, count := range s.pins {
		if count > 0 {
			return false
		}
	}
	return true
}

// Score treats the player unable to move as the loser.
func (s *KaylesState) Score() Score {
	if !s.GameOver() {
		return Tie
	}
	if s.ourTurn {
		return Loss
	}
	return Victory
}

func (s *KaylesState) ComputersTurn() bool {
	return s.ourTurn
}

// Successors enumerates by group, then offset, then pins taken, all ascending.
func (s *KaylesState) Successors() []State {
	var result []State
	for group, size := range s.pins {
		for offset := 0; offset < size; offset++ {
			for taken := MinTaken; taken <= MaxTaken && offset+taken <= size; taken++ {
				result = append(result, s.Apply(KaylesMove{Group: group, Offset: offset, Taken: taken}))
			}
		}
	}
	return result
}

func (s *KaylesState) Hash() StateHash {
	return s.hashCode
}

func (s *KaylesState) cacheHash() {
	h := uint32(0)
	for _, count := range s.pins {
		h = fold(h, count)
	}
	s.hashCode = finish(h, s.ourTurn)
}

// Equals compares the group sequence and the turn. Group order matters:
// mirrored rows are different states.
func (s *KaylesState) Equals(other State) bool {
	o, ok := other.(*KaylesState)
	if !ok || s.ourTurn != o.ourTurn || len(s.pins) != len(o.pins) {
		return false
	}
	for i, count := range s.pins {
		if o.pins[i] != count {
			return false
		}
	}
	return true
}

// CopyFrom overwrites s with src's position, turn and cached hash, then
// returns s. Assigning a state to itself changes nothing.
func (s *KaylesState) CopyFrom(src *KaylesState) *KaylesState {
	if s == src {
		return s
	}
	s.pins = append(s.pins[:0], src.pins...)
	s.ourTurn = src.ourTurn
	s.hashCode = src.hashCode
	return s
}

func (s *KaylesState) String() string {
	groups := make([]string, len(s.pins))
	for i, count := range s.pins {
		groups[i] = strconv.Itoa(count)
	}
	return fmt.Sprintf("It is the %s's turn and the pin groups are: %s",
		turnWord(s.ourTurn), strings.Join(groups, " "))
}

// KaylesAreSubsequent reports whether next can follow first in a single move.
func KaylesAreSubsequent(first, next *KaylesState) bool {
	_, ok := KaylesDiff(first, next)
	return ok
}

// KaylesDiff recovers the move played between two subsequent states. A move
// that shrank a group from either end always comes back with Offset 0; the
// resulting state is the same. ok is false when next cannot follow first.
func KaylesDiff(first, next *KaylesState) (KaylesMove, bool) {
	if first.ourTurn == next.ourTurn {
		return KaylesMove{}, false
	}
	switch len(next.pins) - len(first.pins) {
	case 0:
		return kaylesShrinkDiff(first, next)
	case 1:
		return kaylesSplitDiff(first, next)
	default:
		return KaylesMove{}, false
	}
}

// kaylesShrinkDiff handles moves that left the group count alone: exactly one
// group must have lost between MinTaken and MaxTaken pins.
func kaylesShrinkDiff(first, next *KaylesState) (KaylesMove, bool) {
	move := KaylesMove{Group: -1}
	for i, count := range first.pins {
		if next.pins[i] == count {
			continue
		}
		if move.Group >= 0 {
			return KaylesMove{}, false
		}
		taken := count - next.pins[i]
		if taken < MinTaken || taken > MaxTaken {
			return KaylesMove{}, false
		}
		move = KaylesMove{Group: i, Offset: 0, Taken: taken}
	}
	if move.Group < 0 {
		return KaylesMove{}, false
	}
	return move, true
}

// kaylesSplitDiff handles moves that split a group: the changed group of first
// must equal two adjacent non-empty groups of next plus the pins taken.
func kaylesSplitDiff(first, next *KaylesState) (KaylesMove, bool) {
	group := 0
	for group < len(first.pins) && first.pins[group] == next.pins[group] {
		group++
	}
	if group == len(first.pins) || group+1 >= len(next.pins) {
		return KaylesMove{}, false
	}
	left, right := next.pins[group], next.pins[group+1]
	taken := first.pins[group] - left - right
	if left < 1 || right < 1 || taken < MinTaken || taken > MaxTaken {
		return KaylesMove{}, false
	}
	for i := group + 1; i < len(first.pins); i++ {
		if first.pins[i] != next.pins[i+1] {
			return KaylesMove{}, false
		}
	}
	return KaylesMove{Group: group, Offset: left, Taken: taken}, true
}
