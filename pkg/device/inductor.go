package device

type InductorDevice struct {
	BaseDevice
}

var _ Device = (*InductorDevice)(nil)

func NewInductor(name string, pos, neg int, value float64) *InductorDevice {
	return &InductorDevice{
		BaseDevice: BaseDevice{
			Name:    name,
			Element: Element{Pos: pos, Neg: neg, Value: value},
		},
	}
}

func (l *InductorDevice) GetType() ElementType { return Inductor }

// StampDC shorts the terminals through the branch current: v1 - v2 = 0.
func (l *InductorDevice) StampDC() *Stamp {
	s := NewStamp(3)
	s.branch()
	return s
}

// StampAC adds the impedance term: v1 - v2 - jωL*I = 0.
func (l *InductorDevice) StampAC(dc *Stamp, omega float64) *Stamp {
	s := dc.Clone()
	s.Matrix[2][2] -= complex(0, omega*l.Value)
	return s
}
