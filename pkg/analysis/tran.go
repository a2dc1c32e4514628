package analysis

import (
	"fmt"

	"github.com/nikekukuri/rusty-toyspice/pkg/device"
	"github.com/nikekukuri/rusty-toyspice/pkg/netlist"
)

// Transient is accepted as an analysis request but assembly rejects it.
type Transient struct {
	BaseAnalysis
	stopTime float64
	timeStep float64
}

func NewTransient(tStop, tStep float64) *Transient {
	return &Transient{
		BaseAnalysis: *NewBaseAnalysis(),
		stopTime:     tStop,
		timeStep:     tStep,
	}
}

func (tr *Transient) Setup(nl *netlist.Netlist) error {
	tr.Netlist = nl
	return nil
}

func (tr *Transient) Execute() error {
	_, err := tr.solve(tr.Netlist, device.Transient, 0)
	if err != nil {
		return fmt.Errorf("transient analysis to %g step %g: %w", tr.stopTime, tr.timeStep, err)
	}
	return nil
}
