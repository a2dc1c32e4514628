package device

// Stamp is the local contribution of one element. Rows and columns follow
// (pos, neg) for two-unknown stamps and (pos, neg, branch) for three.
type Stamp struct {
	Matrix [][]complex128
	Vector []complex128
}

func NewStamp(size int) *Stamp {
	mat := make([][]complex128, size)
	for i := range mat {
		mat[i] = make([]complex128, size)
	}
	return &Stamp{
		Matrix: mat,
		Vector: make([]complex128, size),
	}
}

func (s *Stamp) Size() int {
	return len(s.Vector)
}

func (s *Stamp) Clone() *Stamp {
	out := NewStamp(s.Size())
	for i, row := range s.Matrix {
		copy(out.Matrix[i], row)
	}
	copy(out.Vector, s.Vector)
	return out
}

// admittance writes y in the two-terminal pattern [[y,-y],[-y,y]].
func (s *Stamp) admittance(y complex128) {
	s.Matrix[0][0] += y
	s.Matrix[0][1] -= y
	s.Matrix[1][0] -= y
	s.Matrix[1][1] += y
}

// branch writes the ±1 coupling between the terminals and the branch current.
func (s *Stamp) branch() {
	s.Matrix[0][2] = 1
	s.Matrix[1][2] = -1
	s.Matrix[2][0] = 1
	s.Matrix[2][1] = -1
}
