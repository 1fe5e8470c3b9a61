package universe

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrEmpty         = fmt.Errorf("empty domain: %w", commerr.ErrInvalidArgument)
	ErrNotIncreasing = fmt.Errorf("domain not strictly increasing: %w", commerr.ErrInvalidArgument)
	ErrNotFinite     = fmt.Errorf("domain point not finite: %w", commerr.ErrInvalidArgument)
	ErrBadStep       = fmt.Errorf("domain step must be positive: %w", commerr.ErrInvalidArgument)
)
