package circuit

import "fmt"

type UnknownKind int

const (
	NodeVoltage UnknownKind = iota
	BranchCurrent
)

// Unknown describes one row/column of the system. Node voltages are keyed by
// node id; branch currents by a per-system counter and the owning element.
type Unknown struct {
	Kind    UnknownKind
	Node    int
	Branch  int
	Element string
}

func (u Unknown) String() string {
	if u.Kind == BranchCurrent {
		return fmt.Sprintf("I(%s)", u.Element)
	}
	return fmt.Sprintf("V(%d)", u.Node)
}

// registerNode returns the index of node, appending it if unseen.
func (c *CircuitSystem) registerNode(node int) int {
	if idx, ok := c.nodeIndex[node]; ok {
		return idx
	}
	return c.push(Unknown{Kind: NodeVoltage, Node: node})
}

// registerBranch always appends a fresh branch-current unknown for element.
func (c *CircuitSystem) registerBranch(element string) int {
	c.nextBranch++
	return c.push(Unknown{Kind: BranchCurrent, Branch: c.nextBranch, Element: element})
}

func (c *CircuitSystem) push(u Unknown) int {
	idx := len(c.unknowns)
	c.unknowns = append(c.unknowns, u)
	c.system.Grow()
	c.index(u, idx)
	return idx
}

func (c *CircuitSystem) index(u Unknown, idx int) {
	switch u.Kind {
	case NodeVoltage:
		c.nodeIndex[u.Node] = idx
	case BranchCurrent:
		if _, exists := c.branchIndex[u.Element]; !exists {
			c.branchIndex[u.Element] = idx
		}
	}
}

// reindex rebuilds the lookup maps from the ordered unknowns.
func (c *CircuitSystem) reindex() {
	c.nodeIndex = make(map[int]int, len(c.unknowns))
	c.branchIndex = make(map[string]int)
	for idx, u := range c.unknowns {
		c.index(u, idx)
	}
}

// NodeIndex returns the row of a node voltage.
func (c *CircuitSystem) NodeIndex(node int) (int, bool) {
	idx, ok := c.nodeIndex[node]
	return idx, ok
}

// BranchIndex returns the row of the first branch current owned by element.
func (c *CircuitSystem) BranchIndex(element string) (int, bool) {
	idx, ok := c.branchIndex[element]
	return idx, ok
}

func (c *CircuitSystem) Unknowns() []Unknown {
	return append([]Unknown(nil), c.unknowns...)
}

func (c *CircuitSystem) labels() []string {
	labels := make([]string, len(c.unknowns))
	for i, u := range c.unknowns {
		labels[i] = u.String()
	}
	return labels
}
