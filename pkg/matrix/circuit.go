package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// CircuitMatrix is a complex sparse matrix with an interleaved rhs
// (rhs[2i] real, rhs[2i+1] imaginary, 1-based).
type CircuitMatrix struct {
	Size     int
	matrix   *sparse.Matrix
	rhs      []float64
	solution []float64
	config   *sparse.Configuration
}

var _ DeviceMatrix = (*CircuitMatrix)(nil)

func NewMatrix(size int) (*CircuitMatrix, error) {
	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 true,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %w", err)
	}

	return &CircuitMatrix{
		Size:   size,
		matrix: mat,
		rhs:    make([]float64, 2*(size+1)),
		config: config,
	}, nil
}

// SetupElements allocates every element so the structure is fixed before factoring.
func (m *CircuitMatrix) SetupElements() {
	for i := 1; i <= m.Size; i++ {
		for j := 1; j <= m.Size; j++ {
			m.matrix.GetElement(int64(i), int64(j))
		}
	}
}

func (m *CircuitMatrix) AddComplexElement(i, j int, value complex128) {
	element := m.matrix.GetElement(int64(i+1), int64(j+1))
	element.Real += real(value)
	element.Imag += imag(value)
}

func (m *CircuitMatrix) AddComplexRHS(i int, value complex128) {
	m.rhs[2*(i+1)] += real(value)
	m.rhs[2*(i+1)+1] += imag(value)
}

func (m *CircuitMatrix) Solve() error {
	var err error

	err = m.matrix.Factor()
	if err != nil {
		return fmt.Errorf("%w: matrix factorization failed: %v", ErrSingular, err)
	}

	m.solution, _, err = m.matrix.SolveComplex(m.rhs, nil)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %w", err)
	}

	return nil
}

// ComplexSolution returns unknown i (0-based) of the last solve.
func (m *CircuitMatrix) ComplexSolution(i int) complex128 {
	if m.solution == nil || i < 0 || i >= m.Size {
		return 0
	}
	return complex(m.solution[2*(i+1)], m.solution[2*(i+1)+1])
}

func (m *CircuitMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
	}
}

// SparseSolver loads the system into a CircuitMatrix and solves it there.
type SparseSolver struct{}

func (SparseSolver) Solve(s *System) ([]complex128, error) {
	n := s.Size()
	if n == 0 {
		return nil, ErrEmpty
	}

	m, err := NewMatrix(n)
	if err != nil {
		return nil, err
	}
	defer m.Destroy()

	m.SetupElements()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := s.At(i, j); v != 0 {
				m.AddComplexElement(i, j, v)
			}
		}
		m.AddComplexRHS(i, s.RHS(i))
	}

	if err := m.Solve(); err != nil {
		return nil, err
	}

	solution := make([]complex128, n)
	for i := range solution {
		solution[i] = m.ComplexSolution(i)
	}
	return solution, nil
}
