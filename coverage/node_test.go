package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSetsParent(t *testing.T) {
	root := NewNode(Module, "demo")
	pkg := NewNode(Package, "com.example")
	root.Add(pkg)

	assert.Nil(t, root.Parent())
	assert.Equal(t, root, pkg.Parent())
	assert.Equal(t, []*Node{pkg}, root.Children())
}

func TestAddKeepsChildOrder(t *testing.T) {
	root := NewNode(Module, "demo")
	for _, name := range []string{"a", "b", "c"} {
		root.Add(NewNode(Package, name))
	}

	names := make([]string, 0)
	for _, child := range root.Children() {
		names = append(names, child.Name())
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestAddLeaf(t *testing.T) {
	method := NewNode(Method, "bar")
	method.AddLeaf(Leaf{Metric: Line, Coverage: Coverage{Covered: 5, Missed: 2}})

	assert.Len(t, method.Leaves(), 1)
	leaf := method.Leaves()[0]
	assert.Equal(t, Line, leaf.Metric)
	assert.Equal(t, 5, leaf.Coverage.Covered)
	assert.Equal(t, 2, leaf.Coverage.Missed)
	assert.Equal(t, 7, leaf.Coverage.Total())
}

func TestWalkVisitsParentsBeforeChildren(t *testing.T) {
	root := NewNode(Module, "demo")
	pkg := NewNode(Package, "p")
	file := NewNode(File, "Foo.java")
	root.Add(pkg)
	pkg.Add(file)

	visited := make([]string, 0)
	root.Walk(func(n *Node) {
		visited = append(visited, n.Name())
	})
	assert.Equal(t, []string{"demo", "p", "Foo.java"}, visited)
}

func TestCount(t *testing.T) {
	root := NewNode(Module, "demo")
	for _, name := range []string{"p1", "p2"} {
		pkg := NewNode(Package, name)
		root.Add(pkg)
		pkg.Add(NewNode(File, "Foo.java"))
	}

	assert.Equal(t, 1, root.Count(Module))
	assert.Equal(t, 2, root.Count(Package))
	assert.Equal(t, 2, root.Count(File))
	assert.Equal(t, 0, root.Count(Method))
}
