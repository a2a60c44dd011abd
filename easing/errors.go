package easing

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrUnknownCurve      = fmt.Errorf("unknown curve: %w", commerr.ErrNotFound)
	ErrInvalidResolution = fmt.Errorf("invalid resolution: %w", commerr.ErrInvalidArgument)
)
