package numeric

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrInvalidType       = fmt.Errorf("invalid type: %w", commerr.ErrInvalidArgument)
	ErrInvalidSignedness = fmt.Errorf("invalid signedness: %w", commerr.ErrInvalidArgument)
	ErrOutOfRange        = fmt.Errorf("value out of range: %w", commerr.ErrOutOfRange)
)
