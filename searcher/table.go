package searcher

import "github.com/solb/cs4gamesolver/game"

// defaultTableCapacity bounds entries when WithTable is given no explicit cap.
const defaultTableCapacity = 1 << 20

type ttFlag int8

const (
	flagExact ttFlag = iota
	flagLower
	flagUpper
)

type entry struct {
	state game.State
	score game.Score
	depth int
	flag  ttFlag
}

// table memoizes verdicts by state hash. A bucket keeps every entry sharing a
// hash and structural equality picks the true match, so colliding positions
// never corrupt each other. A full table is simply reset.
type table struct {
	entries  map[game.StateHash][]entry
	count    int
	capacity int
}

func newTable(capacity int) *table {
	if capacity <= 0 {
		capacity = defaultTableCapacity
	}
	return &table{
		entries:  make(map[game.StateHash][]entry),
		capacity: capacity,
	}
}

// probe returns a memoized verdict usable with remaining plies of lookahead
// left and the given window. Exact entries answer directly; bound entries
// answer only when they close the window.
func (t *table) probe(state game.State, remaining int, alpha, beta game.Score) (game.Score, bool) {
	bucket := t.entries[state.Hash()]
	for i := range bucket {
		e := &bucket[i]
		if e.depth < remaining || !e.state.Equals(state) {
			continue
		}
		switch e.flag {
		case flagExact:
			return e.score, true
		case flagLower:
			if e.score >= beta {
				return e.score, true
			}
		case flagUpper:
			if e.score <= alpha {
				return e.score, true
			}
		}
	}
	return 0, false
}

// store records a verdict, keeping the deeper result when the state is
// already present and preferring exact entries over bounds at equal depth.
func (t *table) store(state game.State, score game.Score, depth int, flag ttFlag) {
	if t.count >= t.capacity {
		t.entries = make(map[game.StateHash][]entry)
		t.count = 0
	}

	key := state.Hash()
	bucket := t.entries[key]
	for i := range bucket {
		e := &bucket[i]
		if !e.state.Equals(state) {
			continue
		}
		if depth > e.depth || (depth == e.depth && flag == flagExact && e.flag != flagExact) {
			e.score, e.depth, e.flag = score, depth, flag
		}
		return
	}
	t.entries[key] = append(bucket, entry{state: state, score: score, depth: depth, flag: flag})
	t.count++
}
