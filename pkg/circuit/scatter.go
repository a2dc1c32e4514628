package circuit

import (
	"fmt"

	"github.com/nikekukuri/rusty-toyspice/pkg/device"
	"github.com/nikekukuri/rusty-toyspice/pkg/matrix"
)

// scatter places a local stamp into a zero system of the given size. indices
// maps local row/column k to global index indices[k].
func scatter(stamp *device.Stamp, indices []int, size int) (*matrix.System, error) {
	if len(indices) != stamp.Size() {
		return nil, fmt.Errorf("%w: %d indices for a %dx%d stamp", ErrInvalidState, len(indices), stamp.Size(), stamp.Size())
	}
	for _, idx := range indices {
		if idx < 0 || idx >= size {
			return nil, fmt.Errorf("%w: index %d outside system of size %d", ErrInvalidState, idx, size)
		}
	}

	placed := matrix.NewSystem(size)
	for i, row := range indices {
		for j, col := range indices {
			if v := stamp.Matrix[i][j]; v != 0 {
				placed.AddComplexElement(row, col, v)
			}
		}
		if v := stamp.Vector[i]; v != 0 {
			placed.AddComplexRHS(row, v)
		}
	}
	return placed, nil
}
