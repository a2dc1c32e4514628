package device

type VoltageSourceDevice struct {
	BaseDevice
}

var _ Device = (*VoltageSourceDevice)(nil)

func NewVoltageSource(name string, pos, neg int, value float64) *VoltageSourceDevice {
	return &VoltageSourceDevice{
		BaseDevice: BaseDevice{
			Name:    name,
			Element: Element{Pos: pos, Neg: neg, Value: value},
		},
	}
}

func (v *VoltageSourceDevice) GetType() ElementType { return VoltageSource }

// v1 - v2 = V
func (v *VoltageSourceDevice) StampDC() *Stamp {
	s := NewStamp(3)
	s.branch()
	s.Vector[2] = complex(v.Value, 0)
	return s
}

// StampAC keeps the source value; it does not depend on frequency.
func (v *VoltageSourceDevice) StampAC(dc *Stamp, omega float64) *Stamp {
	return dc.Clone()
}

func (v *VoltageSourceDevice) SetValue(value float64) {
	v.Value = value
}
