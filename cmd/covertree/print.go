package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jacoco-tools/covertree/coverage"
)

func printTree(w io.Writer, node *coverage.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s %s\n", indent, node.Metric(), node.Name())
	for _, leaf := range node.Leaves() {
		fmt.Fprintf(w, "%s  %s %d/%d\n", indent, leaf.Metric, leaf.Coverage.Covered, leaf.Coverage.Total())
	}
	for _, child := range node.Children() {
		printTree(w, child, depth+1)
	}
}

func printSummary(w io.Writer, root *coverage.Node) {
	fmt.Fprintf(w, "\n%d packages, %d files, %d classes, %d methods\n",
		root.Count(coverage.Package),
		root.Count(coverage.File),
		root.Count(coverage.Class),
		root.Count(coverage.Method))
}

// jsonNode is the CLI's own rendering of a coverage node. It is not a
// defined serialization of the coverage model.
type jsonNode struct {
	Metric   string     `json:"metric"`
	Name     string     `json:"name"`
	Leaves   []jsonLeaf `json:"leaves,omitempty"`
	Children []jsonNode `json:"children,omitempty"`
}

type jsonLeaf struct {
	Metric  string `json:"metric"`
	Covered int    `json:"covered"`
	Missed  int    `json:"missed"`
}

func printJSON(w io.Writer, root *coverage.Node) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toJSONNode(root))
}

func toJSONNode(node *coverage.Node) jsonNode {
	out := jsonNode{
		Metric: node.Metric().String(),
		Name:   node.Name(),
	}
	for _, leaf := range node.Leaves() {
		out.Leaves = append(out.Leaves, jsonLeaf{
			Metric:  leaf.Metric.String(),
			Covered: leaf.Coverage.Covered,
			Missed:  leaf.Coverage.Missed,
		})
	}
	for _, child := range node.Children() {
		out.Children = append(out.Children, toJSONNode(child))
	}
	return out
}
