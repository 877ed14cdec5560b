package game

import (
	"bytes"
	"fmt"
	"strings"
)

// Connectable is the run length that wins the game.
const Connectable = 3

// Symbols are the two cell values; index 0 belongs to the computer.
var Symbols = [2]byte{'X', 'O'}

// Placeholder marks an empty cell in rendered or externally supplied grids.
// The stored board never contains it; columns simply stop at their top symbol.
const Placeholder = '.'

const (
	printHolder = ' '
	printVBar   = '|'
	printFooter = '-'
)

// ValidSymbol reports whether c is one of the two playable symbols.
func ValidSymbol(c byte) bool {
	return c == Symbols[0] || c == Symbols[1]
}

// Pairs of (column, element) steps walking the four run directions: right, up,
// up-right and down-right. The reverse directions need no scan of their own
// because every run is found from one fixed end.
var connectDirections = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// Connect3Move drops the mover's symbol into Column.
type Connect3Move struct {
	Column int
}

func (m Connect3Move) String() string {
	return fmt.Sprintf("drop at column %d", m.Column)
}

// Connect3State is a Connect-3 board frozen at one point in the game. Columns
// store their symbols bottom-first and stop at the highest one played. The
// winner is cached when the state is built, so terminal checks never rescan
// the board.
type Connect3State struct {
	columns  int
	elements int
	board    [][]byte
	ourTurn  bool
	outcome  Score
	hashCode StateHash
}

// NewConnect3State sets up a board of the given dimensions, prefilled from
// original. original is column-major and bottom-first; missing columns are
// empty. Oversized columns and unknown symbols panic.
func NewConnect3State(columns, elements int, original [][]byte, weAreUp bool) *Connect3State {
	if columns < 1 || elements < 1 {
		panic("connect3: board dimensions must be positive")
	}
	if len(original) > columns {
		panic("connect3: starting grid has too many columns")
	}
	s := &Connect3State{
		columns:  columns,
		elements: elements,
		board:    make([][]byte, columns),
		ourTurn:  weAreUp,
	}
	for col := range s.board {
		var src []byte
		if col < len(original) {
			src = original[col]
		}
		if len(src) > elements {
			panic("connect3: starting grid exceeds the board height")
		}
		s.board[col] = make([]byte, len(src), elements)
		for el, cell := range src {
			if !ValidSymbol(cell) {
				panic(fmt.Sprintf("connect3: unknown symbol %q in starting grid", cell))
			}
			s.board[col][el] = cell
		}
	}
	s.outcome = s.computeWinner(-1, -1)
	s.cacheHash()
	return s
}

// Columns returns the board width.
func (s *Connect3State) Columns() int {
	return s.columns
}

// Elements returns the board height.
func (s *Connect3State) Elements() int {
	return s.elements
}

// HasSpace reports whether the column can take another symbol. The column must
// exist.
func (s *Connect3State) HasSpace(column int) bool {
	if column < 0 || column >= s.columns {
		panic(fmt.Sprintf("connect3: no column %d", column))
	}
	return len(s.board[column]) < s.elements
}

// Legal reports whether m names a column with room left.
func (s *Connect3State) Legal(m Connect3Move) bool {
	return m.Column >= 0 && m.Column < s.columns && len(s.board[m.Column]) < s.elements
}

// Apply builds the successor reached by dropping the mover's symbol into
// m.Column. The move must be legal; anything else is a caller bug and panics.
func (s *Connect3State) Apply(m Connect3Move) *Connect3State {
	if !s.Legal(m) {
		panic(fmt.Sprintf("connect3: illegal move %s", m))
	}
	next := &Connect3State{
		columns:  s.columns,
		elements: s.elements,
		board:    make([][]byte, s.columns),
		ourTurn:  !s.ourTurn,
	}
	for col, column := range s.board {
		next.board[col] = make([]byte, len(column), s.elements)
		copy(next.board[col], column)
	}
	symbol := Symbols[1]
	if s.ourTurn {
		symbol = Symbols[0]
	}
	next.board[m.Column] = append(next.board[m.Column], symbol)

	// A board won earlier stays won; only a fresh win can run through the new
	// cell, so that is all the scan covers.
	next.outcome = s.outcome
	if next.outcome == Tie {
		next.outcome = next.computeWinner(m.Column, len(next.board[m.Column])-1)
	}
	next.cacheHash()
	return next
}

// computeWinner finds a completed run and maps its owner to a score. Negative
// base coordinates request a scan of the whole board; otherwise only the runs
// through (baseCol, baseEl) are checked.
func (s *Connect3State) computeWinner(baseCol, baseEl int) Score {
	if baseCol < 0 {
		for col := range s.board {
			for el := range s.board[col] {
				for _, dir := range connectDirections {
					if winner := s.runAt(col, el, dir); winner != Tie {
						return winner
					}
				}
			}
		}
		return Tie
	}
	for _, dir := range connectDirections {
		for back := Connectable - 1; back >= 0; back-- {
			if winner := s.runAt(baseCol-back*dir[0], baseEl-back*dir[1], dir); winner != Tie {
				return winner
			}
		}
	}
	return Tie
}

// runAt reports the owner of a Connectable-long run starting at (col, el) and
// stepping along dir, or Tie when there is none.
func (s *Connect3State) runAt(col, el int, dir [2]int) Score {
	first := s.at(col, el)
	if first == 0 {
		return Tie
	}
	for i := 1; i < Connectable; i++ {
		if s.at(col+i*dir[0], el+i*dir[1]) != first {
			return Tie
		}
	}
	if first == Symbols[0] {
		return Victory
	}
	return Loss
}

// at returns the symbol at (col, el), or 0 for empty and out-of-range cells.
func (s *Connect3State) at(col, el int) byte {
	if col < 0 || col >= s.columns || el < 0 || el >= len(s.board[col]) {
		return 0
	}
	return s.board[col][el]
}

func (s *Connect3State) full() bool {
	for _, column := range s.board {
		if len(column) < s.elements {
			return false
		}
	}
	return true
}

// GameOver reports whether someone has connected a run or the board is full.
func (s *Connect3State) GameOver() bool {
	return s.outcome != Tie || s.full()
}

// Score returns the cached outcome: Victory or Loss once a run is connected,
// Tie for both drawn and unfinished boards.
func (s *Connect3State) Score() Score {
	return s.outcome
}

func (s *Connect3State) ComputersTurn() bool {
	return s.ourTurn
}

// Successors drops into each non-full column from left to right. A won board
// offers no moves even when columns still have room.
func (s *Connect3State) Successors() []State {
	if s.GameOver() {
		return nil
	}
	var result []State
	for col := 0; col < s.columns; col++ {
		if len(s.board[col]) < s.elements {
			result = append(result, s.Apply(Connect3Move{Column: col}))
		}
	}
	return result
}

func (s *Connect3State) Hash() StateHash {
	return s.hashCode
}

// cacheHash folds every cell slot column-major, empties included, so the same
// symbols at different heights hash apart.
func (s *Connect3State) cacheHash() {
	h := uint32(0)
	for _, column := range s.board {
		for el := 0; el < s.elements; el++ {
			cell := 0
			if el < len(column) {
				cell = 1
				if column[el] == Symbols[1] {
					cell = 2
				}
			}
			h = fold(h, cell)
		}
	}
	s.hashCode = finish(h, s.ourTurn)
}

// Equals compares dimensions, the grid and the turn.
func (s *Connect3State) Equals(other State) bool {
	o, ok := other.(*Connect3State)
	if !ok || s.columns != o.columns || s.elements != o.elements || s.ourTurn != o.ourTurn {
		return false
	}
	for col, column := range s.board {
		if !bytes.Equal(column, o.board[col]) {
			return false
		}
	}
	return true
}

// CopyFrom overwrites s with src's grid, turn and caches, then returns s. The
// two boards must share dimensions. Assigning a state to itself changes
// nothing.
func (s *Connect3State) CopyFrom(src *Connect3State) *Connect3State {
	if s == src {
		return s
	}
	if s.columns != src.columns || s.elements != src.elements {
		panic("connect3: assignment between boards of different dimensions")
	}
	for col := range s.board {
		s.board[col] = append(s.board[col][:0], src.board[col]...)
	}
	s.ourTurn = src.ourTurn
	s.outcome = src.outcome
	s.hashCode = src.hashCode
	return s
}

// String draws the board top row first, columns separated by bars, above a
// footer line.
func (s *Connect3State) String() string {
	var b strings.Builder
	for el := s.elements - 1; el >= 0; el-- {
		for col := 0; col < s.columns; col++ {
			if col > 0 {
				b.WriteByte(printVBar)
			}
			cell := s.at(col, el)
			if cell == 0 {
				cell = printHolder
			}
			b.WriteByte(cell)
		}
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(string(printFooter), 2*s.columns-1))
	return b.String()
}

// Connect3AreSubsequent reports whether next can follow first in a single
// move: same dimensions, opposite turn, and exactly one column one symbol
// taller, the new top belonging to the player who was up.
func Connect3AreSubsequent(first, next *Connect3State) bool {
	_, ok := Connect3Diff(first, next)
	return ok
}

// Connect3Diff recovers the move played between two subsequent states. ok is
// false when next cannot follow first.
func Connect3Diff(first, next *Connect3State) (Connect3Move, bool) {
	if first.columns != next.columns || first.elements != next.elements || first.ourTurn == next.ourTurn {
		return Connect3Move{}, false
	}
	grown := -1
	for col := range first.board {
		a, b := first.board[col], next.board[col]
		switch {
		case len(b) == len(a)+1 && grown < 0:
			grown = col
		case len(b) != len(a):
			return Connect3Move{}, false
		}
		if !bytes.Equal(b[:len(a)], a) {
			return Connect3Move{}, false
		}
	}
	if grown < 0 {
		return Connect3Move{}, false
	}
	moved := Symbols[1]
	if first.ourTurn {
		moved = Symbols[0]
	}
	added := next.board[grown]
	if added[len(added)-1] != moved {
		return Connect3Move{}, false
	}
	return Connect3Move{Column: grown}, true
}
