package analysis

import (
	"fmt"

	"github.com/nikekukuri/rusty-toyspice/pkg/device"
	"github.com/nikekukuri/rusty-toyspice/pkg/netlist"
)

// OperatingPoint solves the DC operating point: capacitors open, inductors shorted.
type OperatingPoint struct{ BaseAnalysis }

func NewOP() *OperatingPoint {
	return &OperatingPoint{
		BaseAnalysis: *NewBaseAnalysis(),
	}
}

func (op *OperatingPoint) Setup(nl *netlist.Netlist) error {
	op.Netlist = nl
	return nil
}

func (op *OperatingPoint) Execute() error {
	solution, err := op.solve(op.Netlist, device.DC, 0)
	if err != nil {
		return fmt.Errorf("operating point: %w", err)
	}

	op.results = make(map[string][]float64)
	op.StoreDCResult(solution)
	return nil
}
