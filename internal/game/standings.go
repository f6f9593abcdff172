// internal/game/standings.go
//
// Ranking of teams by score. Consumers only need the sorted scores and
// whether the game is over; presentation happens elsewhere.

package game

import "sort"

// Standing is one line of the ranking.
type Standing struct {
	Rank   int    `json:"rank"`
	TeamID string `json:"teamId"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Full   bool   `json:"full"`
}

// Rank scores every team and sorts them by score, highest first.
// Equal scores keep their input order and share a rank.
func Rank(teams []*Team) []Standing {
	out := make([]Standing, 0, len(teams))
	for _, t := range teams {
		out = append(out, Standing{
			TeamID: t.ID,
			Name:   t.Name,
			Score:  Score(t.Board),
			Full:   t.Board.IsFull(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	for i := range out {
		if i > 0 && out[i].Score == out[i-1].Score {
			out[i].Rank = out[i-1].Rank
		} else {
			out[i].Rank = i + 1
		}
	}
	return out
}

// AllFull reports whether every team has filled its board.
// With no teams there is no game to finish.
func AllFull(teams []*Team) bool {
	if len(teams) == 0 {
		return false
	}
	for _, t := range teams {
		if !t.Board.IsFull() {
			return false
		}
	}
	return true
}
