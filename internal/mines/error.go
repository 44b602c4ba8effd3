package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrInvalidPhase     = errors.New("game is not in progress")
	ErrConfiguration    = errors.New("invalid game configuration")
	ErrAlreadyPlaced    = errors.New("mines already placed")
)

// ErrConfirmationRequired is returned when a flagged cell is revealed without
// explicit confirmation. It also matches [ErrInvalidSelection].
var ErrConfirmationRequired = fmt.Errorf("%w: cell is flagged", ErrInvalidSelection)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
