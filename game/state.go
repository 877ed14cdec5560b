package game

import "fmt"

// Score is the outcome of a match from the computer's perspective. Tie doubles
// as "not finished yet"; consult GameOver before reading anything into it.
type Score int

const (
	Loss    Score = -1
	Tie     Score = 0
	Victory Score = 1
)

func (s Score) String() string {
	switch s {
	case Loss:
		return "loss"
	case Tie:
		return "tie"
	case Victory:
		return "victory"
	default:
		return fmt.Sprintf("Score(%d)", int(s))
	}
}

// StateHash is a cached position identity. Values are masked to 31 bits so
// they stay non-negative even when narrowed to a signed int.
type StateHash uint32

// Move describes the transition between two subsequent states in a form a
// front end can echo back to the player.
type Move interface {
	fmt.Stringer
}

// State is the capability set the searcher and the engine consume. A state is
// immutable once constructed: successors own fresh copies of the position and
// never alias their parent, so any number of goroutines may share a state for
// reading.
type State interface {
	// GameOver reports whether the position is terminal under this game's rules.
	GameOver() bool

	// Score judges the position from the computer's perspective. Tie is
	// returned both for drawn and for unfinished games; GameOver tells the two
	// apart.
	Score() Score

	// ComputersTurn reports whether the computer is to move.
	ComputersTurn() bool

	// Successors returns every position reachable by one legal move, each with
	// the turn flipped, in a deterministic order. The result is empty exactly
	// when the game is over.
	Successors() []State

	// Hash returns the cached identity of the position plus the turn.
	Hash() StateHash

	// Equals reports structural equality over position, turn and the game's
	// fixed parameters. States of different games are never equal.
	Equals(State) bool

	// String renders a synopsis for debugging. Connect-3 draws the whole
	// board; the other games fit on one line.
	String() string
}

// Gameplay constants shared by Kayles and Crossout: a single move removes at
// least MinTaken and at most MaxTaken pins or tiles.
const (
	MinTaken = 1
	MaxTaken = 2
)

const hashPrime = 31

// fold accumulates one position component into a running hash.
func fold(h uint32, v int) uint32 {
	return h*hashPrime + uint32(v)
}

// finish mixes in the turn and masks the sign bit so the cached value is
// always non-negative.
func finish(h uint32, ourTurn bool) StateHash {
	if ourTurn {
		h ^= 1
	}
	return StateHash(h & 0x7fffffff)
}

func turnWord(ourTurn bool) string {
	if ourTurn {
		return "computer"
	}
	return "human"
}
