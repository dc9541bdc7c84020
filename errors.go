package wavelet

import (
	"github.com/pkg/errors"
)

var (
	ErrDimensionMismatch = errors.New("wavelet: dimension mismatch")
	ErrInvalidDimensions = errors.New("wavelet: invalid dimensions")
	ErrInvalidArgument   = errors.New("wavelet: invalid argument")
)
