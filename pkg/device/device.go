package device

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedElement  = errors.New("unsupported element")
	ErrUnsupportedAnalysis = errors.New("unsupported analysis")
)

type ElementType int

const (
	Resistor ElementType = iota
	Capacitor
	Inductor
	VoltageSource
)

func (t ElementType) String() string {
	switch t {
	case Resistor:
		return "R"
	case Capacitor:
		return "C"
	case Inductor:
		return "L"
	case VoltageSource:
		return "V"
	default:
		return fmt.Sprintf("ElementType(%d)", int(t))
	}
}

// NeedsBranch reports whether the element carries a branch-current unknown.
func (t ElementType) NeedsBranch() bool {
	return t == Inductor || t == VoltageSource
}

// TypeOf classifies an element by the first character of its name.
func TypeOf(name string) (ElementType, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnsupportedElement)
	}

	switch strings.ToLower(name[:1]) {
	case "r":
		return Resistor, nil
	case "c":
		return Capacitor, nil
	case "l":
		return Inductor, nil
	case "v":
		return VoltageSource, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedElement, name)
}

// Element is a two-terminal element record. Value is resistance, capacitance,
// inductance or source voltage depending on the element type.
type Element struct {
	Pos   int
	Neg   int
	Value float64
}

type AnalysisMode int

const (
	DC AnalysisMode = iota
	AC
	Transient
)

func (m AnalysisMode) String() string {
	switch m {
	case DC:
		return "DC"
	case AC:
		return "AC"
	case Transient:
		return "TRAN"
	default:
		return fmt.Sprintf("AnalysisMode(%d)", int(m))
	}
}

type Device interface {
	GetName() string
	GetType() ElementType
	GetNodes() (pos, neg int)
	GetValue() float64
	// StampDC returns the local stamp for a DC operating point.
	StampDC() *Stamp
	// StampAC turns the DC stamp into its counterpart at angular frequency omega.
	StampAC(dc *Stamp, omega float64) *Stamp
}

type BaseDevice struct {
	Name string
	Element
}

func (d *BaseDevice) GetName() string {
	return d.Name
}

func (d *BaseDevice) GetNodes() (int, int) {
	return d.Pos, d.Neg
}

func (d *BaseDevice) GetValue() float64 {
	return d.Value
}

// New builds the device matching the prefix of name.
func New(name string, elem Element) (Device, error) {
	etype, err := TypeOf(name)
	if err != nil {
		return nil, err
	}

	base := BaseDevice{Name: name, Element: elem}
	switch etype {
	case Resistor:
		return &ResistorDevice{BaseDevice: base}, nil
	case Capacitor:
		return &CapacitorDevice{BaseDevice: base}, nil
	case Inductor:
		return &InductorDevice{BaseDevice: base}, nil
	default:
		return &VoltageSourceDevice{BaseDevice: base}, nil
	}
}

// Generate produces the local stamp of dev for the requested analysis.
func Generate(dev Device, mode AnalysisMode, omega float64) (*Stamp, error) {
	switch mode {
	case DC:
		return dev.StampDC(), nil
	case AC:
		return dev.StampAC(dev.StampDC(), omega), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAnalysis, mode)
	}
}
