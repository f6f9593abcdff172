package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teamWith(t *testing.T, name, board string) *Team {
	t.Helper()
	team := NewTeam(name)
	team.Board = parseBoard(t, board)
	return team
}

func TestRank_SortsDescendingAndKeepsTieOrder(t *testing.T) {
	teams := []*Team{
		teamWith(t, "low", "5 3"),        // 0
		teamWith(t, "mid-a", "1 2 3"),    // 3
		teamWith(t, "high", "1 2 3 4 5"), // 7
		teamWith(t, "mid-b", "9 J 1 2"),  // 3
		teamWith(t, "pair", "5 J 3"),     // 1
	}

	got := Rank(teams)
	require.Len(t, got, len(teams))

	names := make([]string, len(got))
	ranks := make([]int, len(got))
	scores := make([]int, len(got))
	for i, s := range got {
		names[i], ranks[i], scores[i] = s.Name, s.Rank, s.Score
	}
	assert.Equal(t, []string{"high", "mid-a", "mid-b", "pair", "low"}, names)
	assert.Equal(t, []int{7, 3, 3, 1, 0}, scores)
	assert.Equal(t, []int{1, 2, 2, 4, 5}, ranks)
	assert.Equal(t, teams[2].ID, got[0].TeamID)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}

func TestAllFull(t *testing.T) {
	assert.False(t, AllFull(nil))

	full := NewTeam("full")
	for i := range full.Board {
		full.Board[i] = Number(1)
	}
	assert.True(t, AllFull([]*Team{full}))
	assert.False(t, AllFull([]*Team{full, NewTeam("empty")}))
}
