package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/nikekukuri/rusty-toyspice/pkg/circuit"
	"github.com/nikekukuri/rusty-toyspice/pkg/device"
	"github.com/nikekukuri/rusty-toyspice/pkg/matrix"
	"github.com/nikekukuri/rusty-toyspice/pkg/netlist"
)

type Analysis interface {
	Setup(nl *netlist.Netlist) error
	Execute() error
	GetResults() map[string][]float64
}

type BaseAnalysis struct {
	Netlist *netlist.Netlist
	solver  matrix.Solver
	results map[string][]float64 // key: variable name, value: result per point
}

func NewBaseAnalysis() *BaseAnalysis {
	return &BaseAnalysis{
		solver:  matrix.DenseSolver{CondTolerance: matrix.DefaultCondTolerance},
		results: make(map[string][]float64),
	}
}

// SetSolver replaces the linear solver used for every point.
func (a *BaseAnalysis) SetSolver(solver matrix.Solver) {
	a.solver = solver
}

// solve builds a fresh system for nl, removes ground and solves it.
func (a *BaseAnalysis) solve(nl *netlist.Netlist, mode device.AnalysisMode, omega float64) (map[string]complex128, error) {
	if nl == nil {
		return nil, fmt.Errorf("netlist not set")
	}

	ckt := circuit.NewWithSolver(a.solver)
	err := ckt.Assemble(nl, mode, omega)
	if err != nil {
		return nil, fmt.Errorf("assembling %s: %w", mode, err)
	}
	err = ckt.RemoveGround()
	if err != nil {
		return nil, err
	}
	_, err = ckt.Solve()
	if err != nil {
		return nil, err
	}

	solution := ckt.GetSolution()
	delete(solution, "V(0)")
	return solution, nil
}

func (a *BaseAnalysis) StoreDCResult(solution map[string]complex128) {
	for name, value := range solution {
		a.results[name] = append(a.results[name], real(value))
	}
}

func (a *BaseAnalysis) StoreACResult(freq float64, solution map[string]complex128) {
	a.results["FREQ"] = append(a.results["FREQ"], freq)

	for name, value := range solution {
		magName := name + "_MAG"
		a.results[magName] = append(a.results[magName], cmplx.Abs(value))

		// Phase - degree
		phaseName := name + "_PHASE"
		a.results[phaseName] = append(a.results[phaseName], cmplx.Phase(value)*180.0/math.Pi)
	}
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}
