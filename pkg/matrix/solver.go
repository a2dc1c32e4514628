package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

type Solver interface {
	Solve(s *System) ([]complex128, error)
}

type Backend string

const (
	Dense  Backend = "dense"
	Sparse Backend = "sparse"
)

// DefaultCondTolerance is the largest condition number DenseSolver accepts.
const DefaultCondTolerance = 1e12

func NewSolver(backend Backend) (Solver, error) {
	switch backend {
	case Dense, "":
		return DenseSolver{CondTolerance: DefaultCondTolerance}, nil
	case Sparse:
		return SparseSolver{}, nil
	}
	return nil, fmt.Errorf("unknown solver backend %q", backend)
}

// DenseSolver factors the real 2n×2n form [[Re, -Im], [Im, Re]] of the
// complex system with gonum's LU.
type DenseSolver struct {
	CondTolerance float64
}

func (d DenseSolver) Solve(s *System) ([]complex128, error) {
	n := s.Size()
	if n == 0 {
		return nil, ErrEmpty
	}

	a := mat.NewDense(2*n, 2*n, nil)
	b := mat.NewVecDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := s.At(i, j)
			a.Set(i, j, real(v))
			a.Set(i, j+n, -imag(v))
			a.Set(i+n, j, imag(v))
			a.Set(i+n, j+n, real(v))
		}
		b.SetVec(i, real(s.RHS(i)))
		b.SetVec(i+n, imag(s.RHS(i)))
	}

	var lu mat.LU
	lu.Factorize(a)

	tol := d.CondTolerance
	if tol <= 0 {
		tol = DefaultCondTolerance
	}
	cond := lu.Cond()
	if math.IsNaN(cond) || math.IsInf(cond, 0) || cond > tol {
		return nil, fmt.Errorf("%w: condition number %g", ErrSingular, cond)
	}

	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	solution := make([]complex128, n)
	for i := range solution {
		solution[i] = complex(x.AtVec(i), x.AtVec(i+n))
	}
	return solution, nil
}
