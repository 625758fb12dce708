package coverage

// Coverage is a covered/missed pair of counts for a single metric.
type Coverage struct {
	Covered int
	Missed  int
}

// Total returns the overall number of counted items.
func (c Coverage) Total() int {
	return c.Covered + c.Missed
}

// Leaf is a terminal coverage value attached under a method node. A leaf
// is not a tree node and never has children of its own.
type Leaf struct {
	Metric   Metric
	Coverage Coverage
}

// Node is one node of a coverage tree. Nodes own their children; the
// parent reference only supports upward traversal and is set once, when
// the node is attached.
type Node struct {
	metric   Metric
	name     string
	parent   *Node
	children []*Node
	leaves   []Leaf
}

// NewNode creates a detached node of the given granularity.
func NewNode(metric Metric, name string) *Node {
	return &Node{metric: metric, name: name}
}

// Add attaches child as the last child of n.
func (n *Node) Add(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// AddLeaf attaches a coverage value to n.
func (n *Node) AddLeaf(leaf Leaf) {
	n.leaves = append(n.leaves, leaf)
}

// Metric returns the granularity of n.
func (n *Node) Metric() Metric {
	return n.metric
}

// Name returns the display name of n.
func (n *Node) Name() string {
	return n.name
}

// Parent returns the enclosing node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child nodes in attachment order.
func (n *Node) Children() []*Node {
	return n.children
}

// Leaves returns the coverage values attached to n.
func (n *Node) Leaves() []Leaf {
	return n.leaves
}

// Walk calls fn for n and every node below it, parents before children,
// siblings in attachment order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// Count returns the number of nodes of the given metric in the subtree
// rooted at n, including n itself.
func (n *Node) Count(metric Metric) int {
	count := 0
	n.Walk(func(node *Node) {
		if node.metric == metric {
			count++
		}
	})
	return count
}
