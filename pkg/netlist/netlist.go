package netlist

import (
	"fmt"
	"maps"
	"slices"

	"github.com/nikekukuri/rusty-toyspice/pkg/device"
)

// Netlist holds the elements of a circuit grouped by type.
type Netlist struct {
	Title string
	V     map[string]device.Element // Voltage sources
	R     map[string]device.Element // Resistors
	C     map[string]device.Element // Capacitors
	L     map[string]device.Element // Inductors
}

// Entry is one named element.
type Entry struct {
	Name    string
	Element device.Element
}

func New(title string) *Netlist {
	return &Netlist{
		Title: title,
		V:     make(map[string]device.Element),
		R:     make(map[string]device.Element),
		C:     make(map[string]device.Element),
		L:     make(map[string]device.Element),
	}
}

// Add files elem under the group given by the prefix of name.
func (n *Netlist) Add(name string, elem device.Element) error {
	etype, err := device.TypeOf(name)
	if err != nil {
		return err
	}

	group := n.group(etype)
	if _, exists := group[name]; exists {
		return fmt.Errorf("duplicate element %s", name)
	}
	group[name] = elem
	return nil
}

func (n *Netlist) group(etype device.ElementType) map[string]device.Element {
	switch etype {
	case device.VoltageSource:
		return n.V
	case device.Resistor:
		return n.R
	case device.Capacitor:
		return n.C
	default:
		return n.L
	}
}

// Elements flattens the netlist: voltage sources, resistors, capacitors, then
// inductors, each group sorted by name.
func (n *Netlist) Elements() []Entry {
	entries := make([]Entry, 0, n.Len())
	for _, group := range []map[string]device.Element{n.V, n.R, n.C, n.L} {
		for _, name := range slices.Sorted(maps.Keys(group)) {
			entries = append(entries, Entry{Name: name, Element: group[name]})
		}
	}
	return entries
}

func (n *Netlist) Len() int {
	return len(n.V) + len(n.R) + len(n.C) + len(n.L)
}

// Lookup finds an element by name in any group.
func (n *Netlist) Lookup(name string) (device.Element, bool) {
	for _, group := range []map[string]device.Element{n.V, n.R, n.C, n.L} {
		if elem, ok := group[name]; ok {
			return elem, true
		}
	}
	return device.Element{}, false
}

// SetValue replaces the value of an existing element.
func (n *Netlist) SetValue(name string, value float64) error {
	for _, group := range []map[string]device.Element{n.V, n.R, n.C, n.L} {
		if elem, ok := group[name]; ok {
			elem.Value = value
			group[name] = elem
			return nil
		}
	}
	return fmt.Errorf("element %s not found", name)
}

func (n *Netlist) Clone() *Netlist {
	return &Netlist{
		Title: n.Title,
		V:     maps.Clone(n.V),
		R:     maps.Clone(n.R),
		C:     maps.Clone(n.C),
		L:     maps.Clone(n.L),
	}
}
