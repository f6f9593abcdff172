// internal/game/engine.go
//
// Run classifier for a team's board.
// Responsibilities:
//   - Decide, for each adjacent pair of cells, whether they belong to the same run.
//   - Resolve jokers that sit between two misordered numbers.
//
// The result is a connects vector: connects[i] links cell i to cell i+1.
// It is derived on every call and never stored.
package game

// Connects classifies every adjacent pair of cells on the board.
//
// Pass 1:
//   - A pair with an empty side never connects.
//   - Two numbers connect when they do not descend (equal values connect).
//   - A pair touching a joker connects provisionally.
//
// Pass 2, jokers in ascending index order:
//   - Find the nearest number on each side, skipping jokers and stopping at
//     the first empty cell.
//   - If both exist and before >= after, the joker cannot bridge them. It stays
//     with the longer side (the left one on a tie) and the link to the other
//     side is cut.
//
// Later jokers see the links cut for earlier ones.
func Connects(b Board) [Links]bool {
	var conn [Links]bool

	// First pass: optimistic adjacency.
	for i := 0; i < Links; i++ {
		l, r := b[i], b[i+1]
		switch {
		case l.IsEmpty() || r.IsEmpty():
			conn[i] = false
		case l.IsJoker() || r.IsJoker():
			conn[i] = true
		default:
			conn[i] = l.value <= r.value
		}
	}

	// Second pass: break jokers that would bridge a descent.
	for i, c := range b {
		if !c.IsJoker() {
			continue
		}
		before, ok := nearestNumber(&b, i, -1)
		if !ok {
			continue
		}
		after, ok := nearestNumber(&b, i, +1)
		if !ok || before < after {
			continue
		}
		if runLength(&b, &conn, i, -1) >= runLength(&b, &conn, i, +1) {
			conn[i] = false
		} else {
			conn[i-1] = false
		}
	}
	return conn
}

// step moves one cell from i in direction dir (-1 or +1).
// It reports false at the board edge or when the next cell is empty.
func step(b *Board, i, dir int) (int, bool) {
	j := i + dir
	if j < 0 || j >= Size || b[j].IsEmpty() {
		return j, false
	}
	return j, true
}

// link returns the connects index between cell i and its neighbour in direction dir.
func link(i, dir int) int {
	if dir < 0 {
		return i - 1
	}
	return i
}

// nearestNumber scans from i in direction dir for the first numbered token,
// passing over jokers and giving up at the first empty cell.
func nearestNumber(b *Board, i, dir int) (int, bool) {
	for j, ok := step(b, i, dir); ok; j, ok = step(b, j, dir) {
		if b[j].IsNumber() {
			return b[j].value, true
		}
	}
	return 0, false
}

// runLength measures the run around a joker at i in direction dir, counting
// the joker itself. Each connected step counts once. When the next link is cut
// but the cell beyond it is filled, that boundary cell is counted as well and
// the walk stops there; an empty cell or the edge stops it without counting.
func runLength(b *Board, conn *[Links]bool, i, dir int) int {
	n := 1
	for j := i; ; {
		next, ok := step(b, j, dir)
		if !ok {
			return n
		}
		n++
		if !conn[link(j, dir)] {
			return n
		}
		j = next
	}
}
