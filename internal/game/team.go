// internal/game/team.go
//
// Team board state.
// A team owns one board and fills it one placement at a time. Which token is
// drawn and whose turn it is are decided elsewhere; this file only guards the
// board itself.

package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Team holds the state of a single team in a game.
type Team struct {
	ID         string    `json:"id"`         // Unique team identifier (UUID).
	Name       string    `json:"name"`       // Display name.
	Board      Board     `json:"board"`      // The team's strip.
	Placements int       `json:"placements"` // Tokens placed so far.
	CreatedAt  time.Time `json:"createdAt"`
}

// NewTeam constructs a team with an empty board.
func NewTeam(name string) *Team {
	return &Team{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// Place puts c into the empty cell at index.
//
// Validation rules:
//   - index must be within 0..Size-1.
//   - c must be a token (a number or a joker).
//   - the cell must still be empty.
func (t *Team) Place(index int, c Cell) error {
	if index < 0 || index >= Size {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if c.IsEmpty() {
		return ErrInvalidCell
	}
	if t.Board[index].IsFilled() {
		return fmt.Errorf("%w: %d", ErrCellOccupied, index)
	}
	t.Board[index] = c
	t.Placements++
	return nil
}

// Evaluate scores the team's current board.
func (t *Team) Evaluate() Result { return Evaluate(t.Board) }
