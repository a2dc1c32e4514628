package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikekukuri/rusty-toyspice/pkg/device"
	"github.com/nikekukuri/rusty-toyspice/pkg/matrix"
	"github.com/nikekukuri/rusty-toyspice/pkg/netlist"
)

func dividerNetlist(t *testing.T) *netlist.Netlist {
	t.Helper()
	nl := netlist.New("voltage divider")
	require.NoError(t, nl.Add("V1", device.Element{Pos: 1, Neg: 0, Value: 9.0}))
	require.NoError(t, nl.Add("R1", device.Element{Pos: 1, Neg: 2, Value: 1000}))
	require.NoError(t, nl.Add("R2", device.Element{Pos: 2, Neg: 0, Value: 2000}))
	return nl
}

func assertDims(t *testing.T, c *CircuitSystem) {
	t.Helper()
	a, b := c.CurrentSystem()
	require.NotNil(t, a)
	r, cols := a.Dims()
	assert.Equal(t, c.NodeCount(), r)
	assert.Equal(t, c.NodeCount(), cols)
	assert.Len(t, b, c.NodeCount())
	assert.Len(t, c.Unknowns(), c.NodeCount())
}

func TestNew(t *testing.T) {
	c := New()

	assert.Equal(t, 2, c.NodeCount())
	assertDims(t, c)

	a, b := c.CurrentSystem()
	for i := 0; i < 2; i++ {
		assert.Zero(t, b[i])
		for j := 0; j < 2; j++ {
			assert.Zero(t, a.At(i, j))
		}
	}

	idx, ok := c.NodeIndex(0)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	idx, ok = c.NodeIndex(1)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestVoltageDivider(t *testing.T) {
	for _, backend := range []matrix.Backend{matrix.Dense, matrix.Sparse} {
		t.Run(string(backend), func(t *testing.T) {
			solver, err := matrix.NewSolver(backend)
			require.NoError(t, err)

			c := NewWithSolver(solver)
			require.NoError(t, c.Assemble(dividerNetlist(t), device.DC, 0))
			require.NoError(t, c.RemoveGround())

			x, err := c.Solve()
			require.NoError(t, err)

			idx, ok := c.NodeIndex(2)
			require.True(t, ok)
			assert.InDelta(t, 9.0*2000/(1000+2000), real(x[idx]), 1e-9)

			solution := c.GetSolution()
			assert.InDelta(t, 9.0, real(solution["V(1)"]), 1e-9)
			assert.InDelta(t, 6.0, real(solution["V(2)"]), 1e-9)
			assert.InDelta(t, -0.003, real(solution["I(V1)"]), 1e-12)
			assert.Zero(t, solution["V(0)"])
		})
	}
}

func TestSingularSystem(t *testing.T) {
	nl := netlist.New("floating")
	require.NoError(t, nl.Add("R1", device.Element{Pos: 1, Neg: 2, Value: 100}))

	c := New()
	require.NoError(t, c.Assemble(nl, device.DC, 0))
	require.NoError(t, c.RemoveGround())

	x, err := c.Solve()
	assert.Nil(t, x)
	assert.ErrorIs(t, err, ErrSingularSystem)
	assert.Nil(t, c.GetSolution())
}

func TestUnsupportedAnalysis(t *testing.T) {
	c := New()
	before := c.NodeCount()
	beforeA, beforeB := c.CurrentSystem()

	err := c.Assemble(dividerNetlist(t), device.Transient, 0)
	assert.ErrorIs(t, err, ErrUnsupportedAnalysis)
	assert.Equal(t, before, c.NodeCount())

	a, b := c.CurrentSystem()
	assert.Equal(t, beforeA, a)
	assert.Equal(t, beforeB, b)
}

func TestUnsupportedElement(t *testing.T) {
	nl := netlist.New("bad element")
	nl.R["X1"] = device.Element{Pos: 1, Neg: 0, Value: 1}

	c := New()
	err := c.Assemble(nl, device.DC, 0)
	assert.ErrorIs(t, err, ErrUnsupportedElement)
	assert.Contains(t, err.Error(), "X1")
}

func TestNodeGrowth(t *testing.T) {
	c := New()
	assemble := func(name string, elem device.Element) {
		nl := netlist.New(name)
		require.NoError(t, nl.Add(name, elem))
		require.NoError(t, c.Assemble(nl, device.DC, 0))
		assertDims(t, c)
	}

	assemble("R1", device.Element{Pos: 1, Neg: 0, Value: 10})
	assert.Equal(t, 2, c.NodeCount(), "known nodes do not grow the system")

	assemble("R2", device.Element{Pos: 1, Neg: 2, Value: 10})
	assert.Equal(t, 3, c.NodeCount(), "a new node adds one unknown")

	assemble("R3", device.Element{Pos: 2, Neg: 1, Value: 10})
	assert.Equal(t, 3, c.NodeCount())

	assemble("V1", device.Element{Pos: 2, Neg: 0, Value: 1})
	assert.Equal(t, 4, c.NodeCount(), "a voltage source adds its branch current")

	assemble("L1", device.Element{Pos: 1, Neg: 2, Value: 1e-3})
	assert.Equal(t, 5, c.NodeCount(), "an inductor adds its branch current")

	assemble("L2", device.Element{Pos: 3, Neg: 4, Value: 1e-3})
	assert.Equal(t, 8, c.NodeCount(), "two new nodes plus one branch")

	require.NoError(t, c.RemoveGround())
	assert.Equal(t, 7, c.NodeCount())
	assertDims(t, c)
}

func TestUniqueBranchUnknowns(t *testing.T) {
	nl := netlist.New("two sources")
	require.NoError(t, nl.Add("V1", device.Element{Pos: 1, Neg: 0, Value: 5}))
	require.NoError(t, nl.Add("V2", device.Element{Pos: 2, Neg: 0, Value: 3}))
	require.NoError(t, nl.Add("R1", device.Element{Pos: 1, Neg: 2, Value: 1000}))

	c := New()
	require.NoError(t, c.Assemble(nl, device.DC, 0))

	unknowns := c.Unknowns()
	require.Len(t, unknowns, 5)
	assert.Equal(t, "V(0)", unknowns[0].String())
	assert.Equal(t, "V(1)", unknowns[1].String())
	assert.Equal(t, "I(V1)", unknowns[2].String())
	assert.Equal(t, "V(2)", unknowns[3].String())
	assert.Equal(t, "I(V2)", unknowns[4].String())
	assert.Equal(t, BranchCurrent, unknowns[2].Kind)
	assert.Equal(t, BranchCurrent, unknowns[4].Kind)
	assert.NotEqual(t, unknowns[2].Branch, unknowns[4].Branch)

	i1, ok := c.BranchIndex("V1")
	require.True(t, ok)
	i2, ok := c.BranchIndex("V2")
	require.True(t, ok)
	assert.NotEqual(t, i1, i2)

	require.NoError(t, c.RemoveGround())
	_, err := c.Solve()
	require.NoError(t, err)

	solution := c.GetSolution()
	assert.InDelta(t, 5.0, real(solution["V(1)"]), 1e-9)
	assert.InDelta(t, 3.0, real(solution["V(2)"]), 1e-9)
	assert.InDelta(t, -0.002, real(solution["I(V1)"]), 1e-12)
	assert.InDelta(t, 0.002, real(solution["I(V2)"]), 1e-12)
}

func TestInductorDC(t *testing.T) {
	nl := netlist.New("inductor short")
	require.NoError(t, nl.Add("V1", device.Element{Pos: 1, Neg: 0, Value: 10}))
	require.NoError(t, nl.Add("L1", device.Element{Pos: 1, Neg: 2, Value: 1e-3}))
	require.NoError(t, nl.Add("R1", device.Element{Pos: 2, Neg: 0, Value: 100}))

	c := New()
	require.NoError(t, c.Assemble(nl, device.DC, 0))
	require.NoError(t, c.RemoveGround())
	_, err := c.Solve()
	require.NoError(t, err)

	solution := c.GetSolution()
	assert.InDelta(t, 10.0, real(solution["V(2)"]), 1e-9)
	assert.InDelta(t, 0.1, real(solution["I(L1)"]), 1e-12)
	assert.InDelta(t, -0.1, real(solution["I(V1)"]), 1e-12)
}

func TestACRL(t *testing.T) {
	nl := netlist.New("rl high pass")
	require.NoError(t, nl.Add("V1", device.Element{Pos: 1, Neg: 0, Value: 1}))
	require.NoError(t, nl.Add("R1", device.Element{Pos: 1, Neg: 2, Value: 1}))
	require.NoError(t, nl.Add("L1", device.Element{Pos: 2, Neg: 0, Value: 1e-3}))

	c := New()
	require.NoError(t, c.Assemble(nl, device.AC, 1000))
	require.NoError(t, c.RemoveGround())
	_, err := c.Solve()
	require.NoError(t, err)

	// j / (1 + j)
	v2 := c.GetSolution()["V(2)"]
	assert.InDelta(t, 0.5, real(v2), 1e-9)
	assert.InDelta(t, 0.5, imag(v2), 1e-9)
}

func TestACRC(t *testing.T) {
	nl := netlist.New("rc low pass")
	require.NoError(t, nl.Add("V1", device.Element{Pos: 1, Neg: 0, Value: 1}))
	require.NoError(t, nl.Add("R1", device.Element{Pos: 1, Neg: 2, Value: 1000}))
	require.NoError(t, nl.Add("C1", device.Element{Pos: 2, Neg: 0, Value: 1e-6}))

	t.Run("dc leaves the capacitor open", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Assemble(nl, device.DC, 1000))
		require.NoError(t, c.RemoveGround())
		_, err := c.Solve()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, real(c.GetSolution()["V(2)"]), 1e-9)
	})

	t.Run("ac at the corner frequency", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Assemble(nl, device.AC, 1000))
		require.NoError(t, c.RemoveGround())
		_, err := c.Solve()
		require.NoError(t, err)
		v2 := c.GetSolution()["V(2)"]
		assert.InDelta(t, 0.5, real(v2), 1e-9)
		assert.InDelta(t, -0.5, imag(v2), 1e-9)
	})
}

func TestSuperposition(t *testing.T) {
	a := device.Element{Pos: 1, Neg: 2, Value: 470}
	b := device.Element{Pos: 1, Neg: 2, Value: 2.2e-6}
	omega := 2 * 3.141592653589793 * 60

	both := netlist.New("both")
	require.NoError(t, both.Add("R1", a))
	require.NoError(t, both.Add("C1", b))
	onlyA := netlist.New("a")
	require.NoError(t, onlyA.Add("R1", a))
	onlyB := netlist.New("b")
	require.NoError(t, onlyB.Add("C1", b))

	cAB, cA, cB := New(), New(), New()
	require.NoError(t, cAB.Assemble(both, device.AC, omega))
	require.NoError(t, cA.Assemble(onlyA, device.AC, omega))
	require.NoError(t, cB.Assemble(onlyB, device.AC, omega))

	mAB, vAB := cAB.CurrentSystem()
	mA, vA := cA.CurrentSystem()
	mB, vB := cB.CurrentSystem()

	n, _ := mAB.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := mA.At(i, j) + mB.At(i, j)
			assert.InDelta(t, real(sum), real(mAB.At(i, j)), 1e-15)
			assert.InDelta(t, imag(sum), imag(mAB.At(i, j)), 1e-15)
		}
		assert.Equal(t, vA[i]+vB[i], vAB[i])
	}
}

func TestRemoveGround(t *testing.T) {
	c := New()
	require.NoError(t, c.Assemble(dividerNetlist(t), device.DC, 0))

	before, beforeB := c.CurrentSystem()
	n := c.NodeCount()

	require.NoError(t, c.RemoveGround())
	assert.True(t, c.GroundRemoved())
	assert.Equal(t, n-1, c.NodeCount())
	assertDims(t, c)

	after, afterB := c.CurrentSystem()
	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			assert.Equal(t, before.At(i, j), after.At(i-1, j-1))
		}
		assert.Equal(t, beforeB[i], afterB[i-1])
	}

	_, ok := c.NodeIndex(0)
	assert.False(t, ok)
	idx, ok := c.NodeIndex(1)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	t.Run("twice is rejected", func(t *testing.T) {
		assert.ErrorIs(t, c.RemoveGround(), ErrInvalidState)
	})

	t.Run("assembling afterwards is rejected", func(t *testing.T) {
		assert.ErrorIs(t, c.Assemble(dividerNetlist(t), device.DC, 0), ErrInvalidState)
	})
}

func TestSolveWithoutGroundRemovalIsSingular(t *testing.T) {
	c := New()
	require.NoError(t, c.Assemble(dividerNetlist(t), device.DC, 0))

	_, err := c.Solve()
	assert.ErrorIs(t, err, ErrSingularSystem)
}
