package builder

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrNoDefinition    = fmt.Errorf("no definition: %w", commerr.ErrInvalidArgument)
	ErrBadSigma        = fmt.Errorf("sigma must be positive: %w", commerr.ErrInvalidArgument)
	ErrShapeMismatch   = fmt.Errorf("centers, levels and names differ in length: %w", commerr.ErrInvalidArgument)
	ErrTooFewAnchors   = fmt.Errorf("at least two anchors required: %w", commerr.ErrInvalidArgument)
	ErrDuplicateAnchor = fmt.Errorf("anchors share an x: %w", commerr.ErrInvalidArgument)
	ErrNotFinite       = fmt.Errorf("value not finite: %w", commerr.ErrInvalidArgument)
	ErrSingletonParams = fmt.Errorf("singleton takes exactly one value: %w", commerr.ErrInvalidArgument)
	ErrNegativePad     = fmt.Errorf("negative pad: %w", commerr.ErrInvalidArgument)
)
