package fis

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrUndefinedOutput    = fmt.Errorf("no rule fired, output undefined: %w", commerr.ErrOutOfRange)
	ErrInvalidInput       = fmt.Errorf("input not a number: %w", commerr.ErrInvalidArgument)
	ErrNoVariable         = fmt.Errorf("missing variable: %w", commerr.ErrInvalidArgument)
	ErrRole               = fmt.Errorf("variable used in the wrong role: %w", commerr.ErrInvalidArgument)
	ErrNoRules            = fmt.Errorf("empty rule base: %w", commerr.ErrInvalidArgument)
	ErrEmptyRule          = fmt.Errorf("rule without antecedent: %w", commerr.ErrInvalidArgument)
	ErrUnknownConnective  = fmt.Errorf("unknown connective: %w", commerr.ErrInvalidArgument)
	ErrUnknownDefuzzifier = fmt.Errorf("unknown defuzzifier: %w", commerr.ErrInvalidArgument)
	ErrNoInput            = fmt.Errorf("no input set: %w", commerr.ErrInvalidArgument)
)
