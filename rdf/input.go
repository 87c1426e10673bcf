package rdf

// SubstituteBase is installed as the base IRI when a document declares
// none, so relative IRIs survive parsing. IRIs under it are rendered
// relative again and no @base directive is emitted for it.
const SubstituteBase = "http://a1234567890.substitute.base/"

// Input bundles a parsed Turtle document: the triples plus everything
// the formatter needs that a bare graph loses, namely the declared
// prefixes and base and the first-appearance orders used as sorting
// tie-breaks.
type Input struct {
	// Graph holds the parsed triples.
	Graph *Graph
	// Base is the effective base IRI. When the document declared no
	// base this is SubstituteBase.
	Base string
	// BaseDeclared reports whether the document itself declared a base.
	BaseDeclared bool
	// Prefixes maps declared prefix labels to namespace IRIs.
	Prefixes map[string]string
	// InversePrefixes maps namespace IRIs back to prefix labels. When
	// two labels bind the same namespace the first declaration wins.
	InversePrefixes map[string]string
	// SubjectOrder lists subjects in first-appearance order.
	SubjectOrder []Term
	// BlankObjectOrder lists blank node labels in the order they first
	// appeared in object position.
	BlankObjectOrder []string
	// ContainsComments reports whether the document carried # comments.
	// Comments are dropped during parsing, so writers may want to
	// refuse rewriting such a document.
	ContainsComments bool
}

// NewInput returns an empty input with the substitute base installed.
func NewInput() *Input {
	return &Input{
		Graph:           NewGraph(),
		Base:            SubstituteBase,
		Prefixes:        make(map[string]string),
		InversePrefixes: make(map[string]string),
	}
}

// BlankObjectIndex returns the first-appearance index of a blank node
// label in object position, or -1 if it never appeared as an object.
func (in *Input) BlankObjectIndex(label string) int {
	for i, l := range in.BlankObjectOrder {
		if l == label {
			return i
		}
	}
	return -1
}
