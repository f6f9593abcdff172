// internal/game/score.go
//
// Aggregation over the connects vector.
// Responsibilities:
//   - Walk the board once, left to right, splitting it into runs.
//   - Score: sum each run's points from the fixed table.
//   - Groups: give every run of two or more cells a display group id.
//
// Score and Groups share the same walk and the same connects vector, so the
// colouring shown to players always matches the points they were given.

package game

// scoreTable maps run length to points. Longer runs are capped at the last entry.
var scoreTable = [...]int{0, 0, 1, 3, 5, 7, 9, 11, 15, 20, 25, 30, 35, 40, 50, 60, 70, 85, 100, 150, 300}

// Run is a maximal sequence of connected filled cells.
type Run struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// End is the index of the run's last cell.
func (r Run) End() int { return r.Start + r.Length - 1 }

// Points is what the run contributes to the board's score.
func (r Run) Points() int { return PointsFor(r.Length) }

// PointsFor looks up the points for a run of n cells.
func PointsFor(n int) int {
	if n < 0 {
		return 0
	}
	if n >= len(scoreTable) {
		n = len(scoreTable) - 1
	}
	return scoreTable[n]
}

// Result bundles everything derived from one connects vector.
type Result struct {
	Score  int         `json:"score"`
	Groups map[int]int `json:"groups"`
	Runs   []Run       `json:"runs"`
	Filled int         `json:"filled"`
	Full   bool        `json:"full"`
}

// Score returns the board's total points.
func Score(b Board) int {
	conn := Connects(b)
	return scoreRuns(runs(&b, &conn))
}

// Groups maps each cell of a run of length ≥ 2 to its group id.
// Ids count up from 0 in left-to-right order; single cells are left out.
func Groups(b Board) map[int]int {
	conn := Connects(b)
	return groupRuns(runs(&b, &conn))
}

// Runs lists the board's runs from left to right, single cells included.
func Runs(b Board) []Run {
	conn := Connects(b)
	return runs(&b, &conn)
}

// Evaluate computes score, groups and runs from a single classification.
func Evaluate(b Board) Result {
	conn := Connects(b)
	rs := runs(&b, &conn)
	return Result{
		Score:  scoreRuns(rs),
		Groups: groupRuns(rs),
		Runs:   rs,
		Filled: b.Filled(),
		Full:   b.IsFull(),
	}
}

// runs splits the board into runs, skipping empty cells.
func runs(b *Board, conn *[Links]bool) []Run {
	out := []Run{}
	for i := 0; i < Size; i++ {
		if b[i].IsEmpty() {
			continue
		}
		start := i
		for i < Links && conn[i] {
			i++
		}
		out = append(out, Run{Start: start, Length: i - start + 1})
	}
	return out
}

func scoreRuns(rs []Run) int {
	total := 0
	for _, r := range rs {
		total += r.Points()
	}
	return total
}

func groupRuns(rs []Run) map[int]int {
	groups := make(map[int]int)
	id := 0
	for _, r := range rs {
		if r.Length < 2 {
			continue
		}
		for i := r.Start; i <= r.End(); i++ {
			groups[i] = id
		}
		id++
	}
	return groups
}
