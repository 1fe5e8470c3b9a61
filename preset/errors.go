package preset

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrNoName = fmt.Errorf("empty preset name: %w", commerr.ErrInvalidArgument)
)
