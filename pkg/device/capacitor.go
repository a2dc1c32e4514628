package device

type CapacitorDevice struct {
	BaseDevice
}

var _ Device = (*CapacitorDevice)(nil)

func NewCapacitor(name string, pos, neg int, value float64) *CapacitorDevice {
	return &CapacitorDevice{
		BaseDevice: BaseDevice{
			Name:    name,
			Element: Element{Pos: pos, Neg: neg, Value: value},
		},
	}
}

func (c *CapacitorDevice) GetType() ElementType { return Capacitor }

// StampDC is all zeros: a capacitor is an open circuit at DC.
func (c *CapacitorDevice) StampDC() *Stamp {
	return NewStamp(2)
}

func (c *CapacitorDevice) StampAC(dc *Stamp, omega float64) *Stamp {
	s := dc.Clone()
	s.admittance(complex(0, omega*c.Value)) // C * jω
	return s
}
