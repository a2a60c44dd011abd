package tween

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrDivideByZero     = fmt.Errorf("divide by zero: %w", commerr.ErrOutOfRange)
	ErrInvalidDirection = fmt.Errorf("invalid direction: %w", commerr.ErrInvalidArgument)
	ErrNoConfig         = fmt.Errorf("no config: %w", commerr.ErrInvalidArgument)
)
