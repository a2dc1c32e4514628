package matrix

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrSingular          = errors.New("singular system")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrEmpty             = errors.New("empty system")
)

// System is a dense complex linear system A·x = b that grows one unknown at a time.
type System struct {
	size int
	a    *mat.CDense // nil while size == 0
	b    []complex128
}

var _ DeviceMatrix = (*System)(nil)

func NewSystem(size int) *System {
	s := &System{size: size, b: make([]complex128, size)}
	if size > 0 {
		s.a = mat.NewCDense(size, size, nil)
	}
	return s
}

func (s *System) Size() int {
	return s.size
}

func (s *System) At(i, j int) complex128 {
	return s.a.At(i, j)
}

func (s *System) RHS(i int) complex128 {
	return s.b[i]
}

func (s *System) AddComplexElement(i, j int, value complex128) {
	s.a.Set(i, j, s.a.At(i, j)+value)
}

func (s *System) AddComplexRHS(i int, value complex128) {
	s.b[i] += value
}

// Grow appends one zero row, one zero column and one zero rhs entry.
func (s *System) Grow() {
	grown := mat.NewCDense(s.size+1, s.size+1, nil)
	for i := 0; i < s.size; i++ {
		for j := 0; j < s.size; j++ {
			grown.Set(i, j, s.a.At(i, j))
		}
	}
	s.a = grown
	s.b = append(s.b, 0)
	s.size++
}

// Add accumulates other into s.
func (s *System) Add(other *System) error {
	if other.size != s.size {
		return fmt.Errorf("%w: adding %dx%d to %dx%d", ErrDimensionMismatch, other.size, other.size, s.size, s.size)
	}
	for i := 0; i < s.size; i++ {
		for j := 0; j < s.size; j++ {
			if v := other.a.At(i, j); v != 0 {
				s.AddComplexElement(i, j, v)
			}
		}
		s.b[i] += other.b[i]
	}
	return nil
}

// RemoveFirst drops row 0, column 0 and rhs entry 0.
func (s *System) RemoveFirst() error {
	if s.size < 1 {
		return ErrEmpty
	}

	n := s.size - 1
	var reduced *mat.CDense
	if n > 0 {
		reduced = mat.NewCDense(n, n, nil)
		for i := 1; i <= n; i++ {
			for j := 1; j <= n; j++ {
				reduced.Set(i-1, j-1, s.a.At(i, j))
			}
		}
	}
	s.a = reduced
	s.b = append([]complex128(nil), s.b[1:]...)
	s.size = n
	return nil
}

// Snapshot returns copies of the matrix and rhs.
func (s *System) Snapshot() (*mat.CDense, []complex128) {
	var a *mat.CDense
	if s.size > 0 {
		a = mat.NewCDense(s.size, s.size, nil)
		a.Copy(s.a)
	}
	return a, append([]complex128(nil), s.b...)
}

// Fprint writes one equation per row, skipping empty rows.
func (s *System) Fprint(w io.Writer, labels []string) error {
	label := func(i int) string {
		if i < len(labels) {
			return labels[i]
		}
		return fmt.Sprintf("x%d", i)
	}

	if _, err := fmt.Fprintf(w, "Circuit Equations (%dx%d):\n", s.size, s.size); err != nil {
		return err
	}
	for i := 0; i < s.size; i++ {
		row := ""
		for j := 0; j < s.size; j++ {
			v := s.a.At(i, j)
			if v == 0 {
				continue
			}
			if imag(v) == 0 {
				row += fmt.Sprintf("  %+g*%s", real(v), label(j))
			} else {
				row += fmt.Sprintf("  (%g + j%g)*%s", real(v), imag(v), label(j))
			}
		}
		if row == "" && s.b[i] == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s = %g + j%g\n", row, real(s.b[i]), imag(s.b[i])); err != nil {
			return err
		}
	}
	return nil
}
