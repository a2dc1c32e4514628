package analysis

import (
	"fmt"
	"math"

	"github.com/nikekukuri/rusty-toyspice/pkg/device"
	"github.com/nikekukuri/rusty-toyspice/pkg/netlist"
)

// DCSweep repeats the operating point while stepping one voltage source.
type DCSweep struct {
	BaseAnalysis
	sourceName string
	start      float64
	stop       float64
	increment  float64
	sweepVals  []float64
}

func NewDCSweep(source string, start, stop, increment float64) *DCSweep {
	return &DCSweep{
		BaseAnalysis: *NewBaseAnalysis(),
		sourceName:   source,
		start:        start,
		stop:         stop,
		increment:    increment,
	}
}

func (dc *DCSweep) Setup(nl *netlist.Netlist) error {
	if _, ok := nl.V[dc.sourceName]; !ok {
		return fmt.Errorf("source %s not found", dc.sourceName)
	}
	if dc.increment <= 0 || dc.stop < dc.start {
		return fmt.Errorf("invalid sweep %g..%g step %g", dc.start, dc.stop, dc.increment)
	}

	dc.Netlist = nl

	// Count steps up front so accumulated rounding cannot drop the last point.
	steps := int(math.Floor((dc.stop-dc.start)/dc.increment + 1e-9))
	dc.sweepVals = make([]float64, steps+1)
	for i := range dc.sweepVals {
		dc.sweepVals[i] = dc.start + float64(i)*dc.increment
	}
	return nil
}

func (dc *DCSweep) Execute() error {
	if dc.Netlist == nil {
		return fmt.Errorf("netlist not set")
	}

	swept := dc.Netlist.Clone()
	dc.results = make(map[string][]float64)
	for _, val := range dc.sweepVals {
		err := swept.SetValue(dc.sourceName, val)
		if err != nil {
			return err
		}

		solution, err := dc.solve(swept, device.DC, 0)
		if err != nil {
			return fmt.Errorf("dc sweep at %s=%g: %w", dc.sourceName, val, err)
		}

		dc.results["SWEEP1"] = append(dc.results["SWEEP1"], val)
		dc.StoreDCResult(solution)
	}

	return nil
}

func (dc *DCSweep) SweepValues() []float64 {
	return dc.sweepVals
}
