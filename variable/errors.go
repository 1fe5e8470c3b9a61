package variable

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrNoName        = fmt.Errorf("empty name: %w", commerr.ErrInvalidArgument)
	ErrDuplicateTerm = fmt.Errorf("duplicate term: %w", commerr.ErrAlreadyExists)
	ErrUnknownTerm   = fmt.Errorf("unknown term: %w", commerr.ErrNotFound)
	ErrInvalidTerm   = fmt.Errorf("term without membership function: %w", commerr.ErrInvalidArgument)
)

func duplicateTermError(variable, term string) error {
	return fmt.Errorf("%s.%s: %w", variable, term, ErrDuplicateTerm)
}

func unknownTermError(variable, term string) error {
	return fmt.Errorf("%s.%s: %w", variable, term, ErrUnknownTerm)
}

func invalidTermError(variable, term string) error {
	return fmt.Errorf("%s.%s: %w", variable, term, ErrInvalidTerm)
}
