package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard_RequiresExactLength(t *testing.T) {
	for _, n := range []int{0, 1, 19, 21} {
		_, err := NewBoard(make([]Cell, n))
		assert.ErrorIs(t, err, ErrBoardLength, "length %d", n)
	}

	cells := make([]Cell, Size)
	cells[0], cells[19] = Number(3), Joker
	b, err := NewBoard(cells)
	require.NoError(t, err)
	assert.Equal(t, Number(3), b[0])
	assert.Equal(t, Joker, b[19])
}

func TestNormalize_DropsOutOfRange(t *testing.T) {
	b := Normalize(map[int]Cell{-1: Number(1), 0: Number(2), 7: Joker, 20: Number(4), 99: Number(5)})
	want := Board{}
	want[0] = Number(2)
	want[7] = Joker
	assert.Equal(t, want, b)
}

func TestBoard_IsFull(t *testing.T) {
	var b Board
	assert.False(t, b.IsFull())
	assert.Equal(t, 0, b.Filled())

	for i := range b {
		b[i] = Joker
	}
	assert.True(t, b.IsFull())

	b[12] = Empty
	assert.False(t, b.IsFull())
	assert.Equal(t, Size-1, b.Filled())
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		in   string
		want Cell
	}{
		{"_", Empty}, {"-", Empty}, {"", Empty},
		{"J", Joker}, {"j", Joker}, {"Joker", Joker},
		{"7", Number(7)}, {" 30 ", Number(30)},
	}
	for _, tt := range tests {
		got, err := ParseCell(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseCell("seven")
	assert.ErrorIs(t, err, ErrInvalidCell)
}

func TestBoard_UnmarshalDenseArray(t *testing.T) {
	var b Board
	require.NoError(t, json.Unmarshal([]byte(`[1, null, "J", 4, null, null, null, null, null, null, null, null, null, null, null, null, null, null, null, "joker"]`), &b))

	want := Board{}
	want[0], want[2], want[3], want[19] = Number(1), Joker, Number(4), Joker
	assert.Equal(t, want, b)
}

func TestBoard_UnmarshalIndexedObject(t *testing.T) {
	var b Board
	require.NoError(t, json.Unmarshal([]byte(`{"0": 5, "3": "joker", "19": 30, "25": 2, "x": 1}`), &b))

	want := Board{}
	want[0], want[3], want[19] = Number(5), Joker, Number(30)
	assert.Equal(t, want, b)
}

func TestBoard_UnmarshalRejectsWrongLengthArray(t *testing.T) {
	for _, n := range []int{0, 3, 19, 21, 25} {
		raw := make([]any, n)
		for i := range raw {
			raw[i] = i + 1
		}
		data, err := json.Marshal(raw)
		require.NoError(t, err)

		var b Board
		err = json.Unmarshal(data, &b)
		assert.ErrorIs(t, err, ErrBoardLength, "length %d", n)
		assert.Equal(t, Board{}, b, "length %d", n)
	}
}

func TestBoard_UnmarshalRejectsBadSlots(t *testing.T) {
	for _, in := range []string{`["Q"]`, `[1.5]`, `[true]`, `"board"`, `{"0": [1]}`} {
		var b Board
		err := json.Unmarshal([]byte(in), &b)
		assert.Error(t, err, in)
	}

	var b Board
	err := json.Unmarshal([]byte(`[1, "wild"]`), &b)
	assert.ErrorIs(t, err, ErrInvalidCell)
}

func TestBoard_MarshalDense(t *testing.T) {
	b := parseBoard(t, "3 J _ 9")
	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `[3,"J",null,9,null,null,null,null,null,null,null,null,null,null,null,null,null,null,null,null]`, string(data))
}
