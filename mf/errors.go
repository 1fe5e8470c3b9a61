package mf

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrParameterOrder   = fmt.Errorf("parameter order violation: %w", commerr.ErrInvalidArgument)
	ErrInvalidParameter = fmt.Errorf("invalid parameter: %w", commerr.ErrInvalidArgument)
	ErrUnknownKind      = fmt.Errorf("unknown membership function kind: %w", commerr.ErrInvalidArgument)
)

// ParameterError names the constraint a parameter tuple failed.
type ParameterError struct {
	Kind       Kind
	Constraint string
	Params     []float64

	err error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %v: constraint %q violated by %v", e.Kind, e.err, e.Constraint, e.Params)
}

func (e *ParameterError) Unwrap() error {
	return e.err
}

func orderError(kind Kind, constraint string, params []float64) error {
	return &ParameterError{
		Kind:       kind,
		Constraint: constraint,
		Params:     params,
		err:        ErrParameterOrder,
	}
}

func invalidError(kind Kind, constraint string, params []float64) error {
	return &ParameterError{
		Kind:       kind,
		Constraint: constraint,
		Params:     params,
		err:        ErrInvalidParameter,
	}
}
