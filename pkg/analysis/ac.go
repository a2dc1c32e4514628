package analysis

import (
	"fmt"
	"math"

	"github.com/nikekukuri/rusty-toyspice/pkg/device"
	"github.com/nikekukuri/rusty-toyspice/pkg/netlist"
)

type ACAnalysis struct {
	BaseAnalysis
	startFreq   float64
	stopFreq    float64
	numPoints   int
	pointsType  string // "DEC", "OCT", "LIN"
	frequencies []float64
}

func NewAC(fStart, fStop float64, nPoints int, pType string) *ACAnalysis {
	return &ACAnalysis{
		BaseAnalysis: *NewBaseAnalysis(),
		startFreq:    fStart,
		stopFreq:     fStop,
		numPoints:    nPoints,
		pointsType:   pType,
	}
}

func (ac *ACAnalysis) Setup(nl *netlist.Netlist) error {
	if ac.numPoints < 1 {
		return fmt.Errorf("ac analysis needs at least one point, got %d", ac.numPoints)
	}
	if ac.startFreq <= 0 || ac.stopFreq < ac.startFreq {
		return fmt.Errorf("invalid frequency range %g..%g", ac.startFreq, ac.stopFreq)
	}

	ac.Netlist = nl
	return ac.generateFrequencyPoints()
}

func (ac *ACAnalysis) Execute() error {
	if ac.Netlist == nil {
		return fmt.Errorf("netlist not set")
	}

	ac.results = make(map[string][]float64)
	for _, freq := range ac.frequencies {
		omega := 2 * math.Pi * freq
		solution, err := ac.solve(ac.Netlist, device.AC, omega)
		if err != nil {
			return fmt.Errorf("ac analysis at f=%g: %w", freq, err)
		}
		ac.StoreACResult(freq, solution)
	}

	return nil
}

func (ac *ACAnalysis) Frequencies() []float64 {
	return ac.frequencies
}

func (ac *ACAnalysis) generateFrequencyPoints() error {
	ac.frequencies = make([]float64, ac.numPoints)
	if ac.numPoints == 1 {
		ac.frequencies[0] = ac.startFreq
		return nil
	}

	last := float64(ac.numPoints - 1)
	switch ac.pointsType {
	case "DEC": // Decade
		logStart := math.Log10(ac.startFreq)
		step := (math.Log10(ac.stopFreq) - logStart) / last
		for i := range ac.numPoints {
			ac.frequencies[i] = math.Pow(10, logStart+float64(i)*step)
		}

	case "OCT": // Octave
		logStart := math.Log2(ac.startFreq)
		step := (math.Log2(ac.stopFreq) - logStart) / last
		for i := range ac.numPoints {
			ac.frequencies[i] = math.Pow(2, logStart+float64(i)*step)
		}

	case "LIN": // Linear
		step := (ac.stopFreq - ac.startFreq) / last
		for i := range ac.numPoints {
			ac.frequencies[i] = ac.startFreq + float64(i)*step
		}

	default:
		return fmt.Errorf("unknown sweep type %q", ac.pointsType)
	}
	return nil
}
