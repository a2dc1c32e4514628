package device

type ResistorDevice struct {
	BaseDevice
}

var _ Device = (*ResistorDevice)(nil)

func NewResistor(name string, pos, neg int, value float64) *ResistorDevice {
	return &ResistorDevice{
		BaseDevice: BaseDevice{
			Name:    name,
			Element: Element{Pos: pos, Neg: neg, Value: value},
		},
	}
}

func (r *ResistorDevice) GetType() ElementType { return Resistor }

func (r *ResistorDevice) StampDC() *Stamp {
	g := 1.0 / r.Value // Conductance. G = 1/R

	s := NewStamp(2)
	s.admittance(complex(g, 0))
	return s
}

// StampAC returns a copy of dc: the conductance has no imaginary part.
func (r *ResistorDevice) StampAC(dc *Stamp, omega float64) *Stamp {
	return dc.Clone()
}
