// internal/game/board.go
//
// Board construction and normalization.
// Responsibilities:
//   - Build a dense Board from a slice (strict: exactly Size cells).
//   - Rebuild a dense Board from sparse storage (missing → empty, out of range → dropped).
//   - Parse and encode cells for the CLI and the JSON API.
//
// Wire format (JSON):
//   - number      → numbered token
//   - "J"/"joker" → joker (case-insensitive)
//   - null        → empty
//   A board is either a dense array of exactly Size cells, or an object keyed
//   by decimal index, which is how sparse stores hand it back. Arrays of any
//   other length are rejected with ErrBoardLength.

package game

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NewBoard copies a dense slice of cells into a Board.
// Any length other than Size is a caller bug and is reported, never padded.
func NewBoard(cells []Cell) (Board, error) {
	var b Board
	if len(cells) != Size {
		return b, fmt.Errorf("%w: got %d", ErrBoardLength, len(cells))
	}
	copy(b[:], cells)
	return b, nil
}

// Normalize rebuilds a dense board from a sparse index → cell mapping.
// Indices outside 0..Size-1 are dropped silently.
func Normalize(slots map[int]Cell) Board {
	var b Board
	for i, c := range slots {
		if i < 0 || i >= Size {
			continue
		}
		b[i] = c
	}
	return b
}

// IsFull reports whether every cell holds a token.
func (b Board) IsFull() bool {
	for _, c := range b {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// Filled returns the number of non-empty cells.
func (b Board) Filled() int {
	n := 0
	for _, c := range b {
		if c.IsFilled() {
			n++
		}
	}
	return n
}

// String renders the board as space-separated cells.
func (b Board) String() string {
	parts := make([]string, Size)
	for i, c := range b {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// ParseCell reads a single slot as typed on the command line.
// "_", "-" and "" are empty; "J"/"joker" is a joker; anything else must be an integer.
func ParseCell(s string) (Cell, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "_", "-":
		return Empty, nil
	case "j", "joker":
		return Joker, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Empty, fmt.Errorf("%w: %q", ErrInvalidCell, s)
	}
	return Number(n), nil
}

// MarshalJSON encodes a cell as a number, "J" or null.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case KindNumber:
		return []byte(strconv.Itoa(c.value)), nil
	case KindJoker:
		return []byte(`"J"`), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a number, "J"/"joker" or null.
func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = Empty
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "j", "joker":
			*c = Joker
			return nil
		}
		return fmt.Errorf("%w: %q", ErrInvalidCell, s)
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCell, data)
	}
	*c = Number(n)
	return nil
}

// MarshalJSON always encodes the dense Size-element array.
func (b Board) MarshalJSON() ([]byte, error) {
	return json.Marshal([Size]Cell(b))
}

// UnmarshalJSON reads a dense array (strict length) or normalizes an
// index-keyed object into a Board.
func (b *Board) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) > 0 && data[0] == '[':
		var cells []Cell
		if err := json.Unmarshal(data, &cells); err != nil {
			return err
		}
		dense, err := NewBoard(cells)
		if err != nil {
			return err
		}
		*b = dense
	case len(data) > 0 && data[0] == '{':
		var raw map[string]Cell
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		slots := make(map[int]Cell, len(raw))
		for k, c := range raw {
			i, err := strconv.Atoi(k)
			if err != nil {
				continue
			}
			slots[i] = c
		}
		*b = Normalize(slots)
	case bytes.Equal(data, []byte("null")):
		*b = Board{}
	default:
		return fmt.Errorf("%w: board must be an array or an object", ErrInvalidCell)
	}
	return nil
}
