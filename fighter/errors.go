package fighter

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy is returned while the fighter is attacking, hit-stunned or
	// running a special move.
	ErrBusy            = errors.New("fighter is busy")
	ErrCooldown        = errors.New("attack on cooldown")
	ErrUnknownAttack   = errors.New("unknown attack")
	ErrMoveUnavailable = errors.New("move not available to this character")

	// ErrInsufficientResource is wrapped by every resource gate failure.
	ErrInsufficientResource = errors.New("insufficient resource")
	ErrNotEnoughChakra      = fmt.Errorf("%w: chakra", ErrInsufficientResource)
	ErrGaugeNotFull         = fmt.Errorf("%w: kyubi gauge not full", ErrInsufficientResource)
)
