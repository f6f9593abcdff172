// internal/game/types.go
//
// Core type definitions for the run-scoring engine.
// Defines:
//   - Cell: one slot of a team's strip (empty, a numbered token, or a joker).
//   - Board: the fixed 20-cell strip a team fills during a game.
//   - Sentinel errors shared by the board, team and HTTP layers.

package game

import (
	"errors"
	"strconv"
)

const (
	// Size is the number of cells on every board.
	Size = 20
	// Links is the number of adjacent cell pairs on a board.
	Links = Size - 1
)

var (
	ErrBoardLength     = errors.New("board must have exactly 20 cells")
	ErrInvalidCell     = errors.New("invalid cell value")
	ErrIndexOutOfRange = errors.New("cell index out of range")
	ErrCellOccupied    = errors.New("cell already filled")
)

// Kind tells which of the three slot shapes a Cell holds.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindNumber
	KindJoker
)

// Cell is a single board slot. The zero value is an empty cell.
type Cell struct {
	kind  Kind
	value int
}

var (
	// Empty is the empty cell marker.
	Empty = Cell{}
	// Joker is the wildcard token.
	Joker = Cell{kind: KindJoker}
)

// Number returns a cell holding the numbered token n.
func Number(n int) Cell { return Cell{kind: KindNumber, value: n} }

// IsEmpty reports whether no token has been placed in the cell.
func (c Cell) IsEmpty() bool { return c.kind == KindEmpty }

// IsJoker reports whether the cell holds the wildcard token.
func (c Cell) IsJoker() bool { return c.kind == KindJoker }

// IsNumber reports whether the cell holds a numbered token.
func (c Cell) IsNumber() bool { return c.kind == KindNumber }

// IsFilled is the opposite of IsEmpty.
func (c Cell) IsFilled() bool { return c.kind != KindEmpty }

// Value is the token's number; it is only meaningful when IsNumber is true.
func (c Cell) Value() int { return c.value }

// String renders the cell the way the CLI accepts it: "12", "J" or "_".
func (c Cell) String() string {
	switch c.kind {
	case KindNumber:
		return strconv.Itoa(c.value)
	case KindJoker:
		return "J"
	default:
		return "_"
	}
}

// Board is a team's strip. Its length is fixed by the type; build one from
// a slice with NewBoard or from a sparse source with Normalize.
type Board [Size]Cell
