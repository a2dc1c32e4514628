package circuit

import (
	"errors"

	"github.com/nikekukuri/rusty-toyspice/pkg/device"
	"github.com/nikekukuri/rusty-toyspice/pkg/matrix"
)

var (
	ErrUnsupportedElement  = device.ErrUnsupportedElement
	ErrUnsupportedAnalysis = device.ErrUnsupportedAnalysis
	ErrSingularSystem      = matrix.ErrSingular
	ErrInvalidState        = errors.New("invalid circuit state")
)
