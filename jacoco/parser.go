// Package jacoco turns JaCoCo XML reports into coverage trees.
//
// The report format lists all classes of a package before the
// sourcefile elements that own them, so class nodes are buffered per
// package and attached once their sourcefile appears.
package jacoco

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jacoco-tools/covertree/coverage"
	"github.com/pkg/errors"
)

// elementKind enumerates the report elements the parser acts on. Any
// other element is skipped so newer report versions keep parsing.
type elementKind int

const (
	elemReport elementKind = iota
	elemPackage
	elemClass
	elemSourceFile
	elemMethod
	elemCounter
)

var elementKinds = map[string]elementKind{
	"report":     elemReport,
	"package":    elemPackage,
	"class":      elemClass,
	"sourcefile": elemSourceFile,
	"method":     elemMethod,
	"counter":    elemCounter,
}

// counterMetrics maps counter type attributes to leaf metrics. Counter
// types outside this map are skipped, same as unknown elements.
var counterMetrics = map[string]coverage.Metric{
	"LINE":        coverage.Line,
	"INSTRUCTION": coverage.Instruction,
	"BRANCH":      coverage.Branch,
	"COMPLEXITY":  coverage.Complexity,
}

// session is the state of one parse. Every call to Parse gets a fresh
// session, so independent reports can be parsed concurrently.
type session struct {
	source  string
	base    string
	root    *coverage.Node
	pkg     *coverage.Node
	current *coverage.Node

	// classes waiting for their sourcefile, keyed by sourcefilename.
	// Cleared at every package end so identical file names in
	// different packages cannot cross-link.
	pending map[string][]*coverage.Node
}

// ParseFile parses the JaCoCo XML report at the given path and returns
// the root module node of the resulting coverage tree.
func ParseFile(path string) (*coverage.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceUnavailableError{Source: path, Err: err}
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads a JaCoCo XML report from r and returns the root module
// node of the resulting coverage tree. The source identifier names the
// report; its last path segment becomes part of the module name. On
// failure no tree is returned, partial trees are not a valid output.
func Parse(r io.Reader, source string) (*coverage.Node, error) {
	s := &session{
		source:  source,
		base:    baseName(source),
		pending: map[string][]*coverage.Node{},
	}

	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &SyntaxError{Source: source, Err: err}
		}

		switch token := token.(type) {
		case xml.StartElement:
			if err := s.startElement(token); err != nil {
				return nil, err
			}
		case xml.EndElement:
			s.endElement(token)
		}
	}

	if s.root == nil {
		return nil, &SyntaxError{Source: source, Err: errors.New("no report element found")}
	}
	return s.root, nil
}

func (s *session) startElement(element xml.StartElement) error {
	kind, ok := elementKinds[element.Name.Local]
	if !ok {
		return nil
	}

	switch kind {
	case elemReport:
		name, err := requiredAttr(element, "name")
		if err != nil {
			return err
		}
		// the report name alone is not unique once several reports
		// are merged downstream, so the file name becomes part of it
		s.root = coverage.NewNode(coverage.Module, name+": "+s.base)
		s.current = s.root

	case elemPackage:
		if s.root == nil {
			return &SyntaxError{Source: s.source, Err: errors.New("package element outside report")}
		}
		name, err := requiredAttr(element, "name")
		if err != nil {
			return err
		}
		node := coverage.NewNode(coverage.Package, strings.ReplaceAll(name, "/", "."))
		s.root.Add(node)
		s.pkg = node
		s.current = node

	case elemClass:
		return s.classElement(element)

	case elemSourceFile:
		return s.sourceFileElement(element)

	case elemMethod:
		if s.current == nil {
			return &SyntaxError{Source: s.source, Err: errors.New("method element outside report")}
		}
		name, err := requiredAttr(element, "name")
		if err != nil {
			return err
		}
		node := coverage.NewNode(coverage.Method, name)
		s.current.Add(node)
		s.current = node

	case elemCounter:
		return s.counterElement(element)
	}
	return nil
}

// classElement buffers the class node under its sourcefilename. Classes
// precede their sourcefile in the report, but in the tree they are
// children of the file node, so attachment waits until the owning
// sourcefile element arrives.
func (s *session) classElement(element xml.StartElement) error {
	name, err := requiredAttr(element, "name")
	if err != nil {
		return err
	}
	fileName, err := requiredAttr(element, "sourcefilename")
	if err != nil {
		return err
	}

	node := coverage.NewNode(coverage.Class, name)
	s.pending[fileName] = append(s.pending[fileName], node)
	s.current = node
	return nil
}

// sourceFileElement creates the file node and adopts every class
// buffered for it, in buffer order. A file no class referred to simply
// gets no children.
func (s *session) sourceFileElement(element xml.StartElement) error {
	if s.pkg == nil {
		return &SyntaxError{Source: s.source, Err: errors.New("sourcefile element outside package")}
	}
	name, err := requiredAttr(element, "name")
	if err != nil {
		return err
	}

	node := coverage.NewNode(coverage.File, name)
	for _, class := range s.pending[name] {
		node.Add(class)
	}
	delete(s.pending, name)

	s.pkg.Add(node)
	return nil
}

// counterElement attaches a coverage leaf to the current method node.
// Counters at package, file, and class level are aggregates of the
// method leaves and are dropped rather than stored twice.
func (s *session) counterElement(element xml.StartElement) error {
	counterType, err := requiredAttr(element, "type")
	if err != nil {
		return err
	}
	metric, ok := counterMetrics[counterType]
	if !ok {
		return nil
	}
	if s.current == nil || s.current.Metric() != coverage.Method {
		return nil
	}

	covered, err := intAttr(element, "covered")
	if err != nil {
		return err
	}
	missed, err := intAttr(element, "missed")
	if err != nil {
		return err
	}

	s.current.AddLeaf(coverage.Leaf{
		Metric:   metric,
		Coverage: coverage.Coverage{Covered: covered, Missed: missed},
	})
	return nil
}

func (s *session) endElement(element xml.EndElement) {
	kind, ok := elementKinds[element.Name.Local]
	if !ok {
		return
	}

	switch kind {
	case elemPackage:
		s.current = s.root
		s.pkg = nil
		s.pending = map[string][]*coverage.Node{}
	case elemMethod:
		if s.current != nil && s.current.Parent() != nil {
			s.current = s.current.Parent()
		}
	}
}

func attr(element xml.StartElement, name string) (string, bool) {
	for _, a := range element.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func requiredAttr(element xml.StartElement, name string) (string, error) {
	value, ok := attr(element, name)
	if !ok {
		return "", &MissingAttributeError{Element: element.Name.Local, Attribute: name}
	}
	return value, nil
}

func intAttr(element xml.StartElement, name string) (int, error) {
	value, err := requiredAttr(element, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &InvalidAttributeError{Element: element.Name.Local, Attribute: name, Value: value}
	}
	return n, nil
}

func baseName(source string) string {
	if i := strings.LastIndex(source, "/"); i >= 0 {
		return source[i+1:]
	}
	return source
}
