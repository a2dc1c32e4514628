package circuit

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/nikekukuri/rusty-toyspice/pkg/device"
	"github.com/nikekukuri/rusty-toyspice/pkg/matrix"
	"github.com/nikekukuri/rusty-toyspice/pkg/netlist"
)

// CircuitSystem accumulates the MNA equations of a netlist. Index 0 is the
// ground node until RemoveGround is called.
type CircuitSystem struct {
	unknowns    []Unknown
	nodeIndex   map[int]int
	branchIndex map[string]int
	nextBranch  int

	system        *matrix.System
	solver        matrix.Solver
	groundRemoved bool
	solution      []complex128
}

func New() *CircuitSystem {
	return NewWithSolver(matrix.DenseSolver{CondTolerance: matrix.DefaultCondTolerance})
}

func NewWithSolver(solver matrix.Solver) *CircuitSystem {
	c := &CircuitSystem{
		unknowns: []Unknown{
			{Kind: NodeVoltage, Node: 0},
			{Kind: NodeVoltage, Node: 1},
		},
		system: matrix.NewSystem(2),
		solver: solver,
	}
	c.reindex()
	return c
}

// Assemble stamps every element of nl into the system.
func (c *CircuitSystem) Assemble(nl *netlist.Netlist, mode device.AnalysisMode, omega float64) error {
	if mode != device.DC && mode != device.AC {
		return fmt.Errorf("%w: %s", ErrUnsupportedAnalysis, mode)
	}
	if c.groundRemoved {
		return fmt.Errorf("%w: assembling after ground removal", ErrInvalidState)
	}

	for _, entry := range nl.Elements() {
		err := c.stamp(entry, mode, omega)
		if err != nil {
			return fmt.Errorf("stamping element %s: %w", entry.Name, err)
		}
	}
	c.solution = nil
	return nil
}

func (c *CircuitSystem) stamp(entry netlist.Entry, mode device.AnalysisMode, omega float64) error {
	dev, err := device.New(entry.Name, entry.Element)
	if err != nil {
		return err
	}

	pos, neg := dev.GetNodes()
	indices := []int{c.registerNode(pos), c.registerNode(neg)}
	if dev.GetType().NeedsBranch() {
		indices = append(indices, c.registerBranch(dev.GetName()))
	}

	stamp, err := device.Generate(dev, mode, omega)
	if err != nil {
		return err
	}

	placed, err := scatter(stamp, indices, c.system.Size())
	if err != nil {
		return err
	}
	return c.system.Add(placed)
}

// RemoveGround drops the ground row, column and unknown.
func (c *CircuitSystem) RemoveGround() error {
	if c.groundRemoved {
		return fmt.Errorf("%w: ground already removed", ErrInvalidState)
	}
	if len(c.unknowns) < 1 {
		return fmt.Errorf("%w: no unknowns", ErrInvalidState)
	}

	err := c.system.RemoveFirst()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	c.unknowns = c.unknowns[1:]
	c.reindex()
	c.groundRemoved = true
	c.solution = nil
	return nil
}

// CurrentSystem returns a copy of the matrix and excitation vector.
func (c *CircuitSystem) CurrentSystem() (*mat.CDense, []complex128) {
	return c.system.Snapshot()
}

func (c *CircuitSystem) NodeCount() int {
	return len(c.unknowns)
}

func (c *CircuitSystem) GroundRemoved() bool {
	return c.groundRemoved
}

// Solve returns x with A·x = b, ordered as Unknowns.
func (c *CircuitSystem) Solve() ([]complex128, error) {
	if c.system.Size() != len(c.unknowns) {
		return nil, fmt.Errorf("%w: %d unknowns for a system of size %d", ErrInvalidState, len(c.unknowns), c.system.Size())
	}
	if c.system.Size() == 0 {
		return nil, fmt.Errorf("%w: empty system", ErrInvalidState)
	}

	x, err := c.solver.Solve(c.system)
	if err != nil {
		return nil, fmt.Errorf("solving %d unknowns: %w", len(c.unknowns), err)
	}
	c.solution = x
	return append([]complex128(nil), x...), nil
}

// GetSolution names the last solution: V(<node>) for node voltages and
// I(<element>) for branch currents.
func (c *CircuitSystem) GetSolution() map[string]complex128 {
	if c.solution == nil {
		return nil
	}

	solution := make(map[string]complex128, len(c.solution))
	for i, u := range c.unknowns {
		name := u.String()
		if _, exists := solution[name]; exists {
			continue
		}
		solution[name] = c.solution[i]
	}
	if c.groundRemoved {
		solution["V(0)"] = 0
	}
	return solution
}

// PrintSystem writes the current equations, labelled by unknown.
func (c *CircuitSystem) PrintSystem(w io.Writer) error {
	return c.system.Fprint(w, c.labels())
}
