package fuzzyset

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrDomainMismatch   = fmt.Errorf("sets sampled on different domains: %w", commerr.ErrInvalidArgument)
	ErrDegreeOutOfRange = fmt.Errorf("membership degree outside [0, 1]: %w", commerr.ErrInvalidArgument)
)
