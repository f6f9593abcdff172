package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1970jjh/alpagoteam/internal/game"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newCmd(&Config{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScore_Plain(t *testing.T) {
	out, err := run(t, "score", "9", "J", "1", "2", "--no-color")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "       9  J  1  2  _"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "       .  a  a  a  ."), lines[2])
	assert.Equal(t, "score 3 (2 runs, 1 groups)", lines[3])
}

func TestScore_JSON(t *testing.T) {
	out, err := run(t, "score", "5", "J", "3", "--json")
	require.NoError(t, err)

	var res struct {
		Board  []any          `json:"board"`
		Score  int            `json:"score"`
		Groups map[string]int `json:"groups"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, map[string]int{"0": 0, "1": 0}, res.Groups)
	assert.Len(t, res.Board, game.Size)
}

func TestScore_JSONFromEnv(t *testing.T) {
	t.Setenv("ALPAGOTEAM_JSON", "true")
	out, err := run(t, "score", "1", "2", "3")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)
	assert.Contains(t, out, `"score": 3`)
}

func TestScore_Errors(t *testing.T) {
	_, err := run(t, "score")
	assert.Error(t, err)

	_, err = run(t, "score", "1", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cell 1")

	many := make([]string, game.Size+1)
	for i := range many {
		many[i] = "1"
	}
	_, err = run(t, append([]string{"score"}, many...)...)
	assert.Error(t, err)
}

func TestParseArgs(t *testing.T) {
	b, err := parseArgs([]string{"4", "_", "j", "-", "30"})
	require.NoError(t, err)
	assert.Equal(t, game.Number(4), b[0])
	assert.True(t, b[1].IsEmpty())
	assert.Equal(t, game.Joker, b[2])
	assert.True(t, b[3].IsEmpty())
	assert.Equal(t, game.Number(30), b[4])
	assert.True(t, b[19].IsEmpty())

	_, err = parseArgs(make([]string, game.Size+1))
	assert.Error(t, err)
}

func TestRender_GroupsAlternate(t *testing.T) {
	b, err := parseArgs([]string{"1", "2", "_", "3", "4", "_", "5", "6"})
	require.NoError(t, err)
	out := render(b, game.Evaluate(b), true)
	assert.Contains(t, out, "  a  a  .  b  b  .  c  c")
	assert.Contains(t, out, "score 3 (3 runs, 3 groups)")
}
