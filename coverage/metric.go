package coverage

// Metric identifies the granularity a node represents or, for leaves,
// the kind of construct being counted.
type Metric int

const (
	Module Metric = iota
	Package
	File
	Class
	Method
	Line
	Instruction
	Branch
	Complexity
)

// String returns the metric name in the vocabulary of the report format.
func (m Metric) String() string {
	switch m {
	case Module:
		return "MODULE"
	case Package:
		return "PACKAGE"
	case File:
		return "FILE"
	case Class:
		return "CLASS"
	case Method:
		return "METHOD"
	case Line:
		return "LINE"
	case Instruction:
		return "INSTRUCTION"
	case Branch:
		return "BRANCH"
	case Complexity:
		return "COMPLEXITY"
	}
	return "UNKNOWN"
}
