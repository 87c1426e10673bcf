package format

import (
	"strings"

	"github.com/elevont/prttl/rdf"
)

// Node is one vertex of the document tree. The closed set of
// implementations is NamedNode, BlankLabelNode, BlankInlineNode,
// CollectionNode, LiteralNode and QuotedTripleNode.
type Node interface {
	// isContainer reports whether the node renders with bracketing
	// syntax that can hold further nodes.
	isContainer() bool
	// isEmpty reports whether the node holds no nested content.
	isEmpty() bool
	// isSingleLeafed reports whether the node renders on a single line
	// under the compact layout.
	isSingleLeafed() bool
}

// NameForm says how a named node is written.
type NameForm uint8

const (
	// NamePrefixed renders as prefix:localName.
	NamePrefixed NameForm = iota
	// NameBased renders relative to the base IRI.
	NameBased
	// NamePlain renders as a full <IRI>.
	NamePlain
)

// NamedNode is an IRI with its chosen rendering.
type NamedNode struct {
	IRI  rdf.IRI
	Form NameForm
	// Prefix and Local are set for NamePrefixed; Local alone holds the
	// base-relative part for NameBased.
	Prefix string
	Local  string
}

func (n *NamedNode) isContainer() bool    { return false }
func (n *NamedNode) isEmpty() bool        { return true }
func (n *NamedNode) isSingleLeafed() bool { return true }

// BlankLabelNode is a blank node kept by label because it is referenced
// from more than one place.
type BlankLabelNode struct {
	Label string
}

func (n *BlankLabelNode) isContainer() bool    { return false }
func (n *BlankLabelNode) isEmpty() bool        { return true }
func (n *BlankLabelNode) isSingleLeafed() bool { return true }

// BlankInlineNode is a blank node rendered anonymously with [ ... ].
type BlankInlineNode struct {
	Label      string
	Predicates []*PredicateEntry
}

func (n *BlankInlineNode) isContainer() bool { return true }
func (n *BlankInlineNode) isEmpty() bool     { return len(n.Predicates) == 0 }
func (n *BlankInlineNode) isSingleLeafed() bool {
	return len(n.Predicates) == 0 ||
		(len(n.Predicates) == 1 && n.Predicates[0].isSingleLeafed())
}

// CollectionNode is a well-formed rdf:first/rdf:rest chain rendered in
// ( ... ) syntax. HeadLabel is empty for the empty collection.
type CollectionNode struct {
	HeadLabel string
	Elements  []Node
}

func (n *CollectionNode) isContainer() bool { return true }
func (n *CollectionNode) isEmpty() bool     { return len(n.Elements) == 0 }
func (n *CollectionNode) isSingleLeafed() bool {
	if len(n.Elements) == 0 {
		return true
	}
	return len(n.Elements) == 1 && n.Elements[0].isSingleLeafed()
}

// LiteralNode is a literal plus the named-node form of its datatype
// when one will be displayed. NiceDatatype is nil for plain and
// language-tagged strings.
type LiteralNode struct {
	Literal      rdf.Literal
	NiceDatatype *NamedNode
}

func (n *LiteralNode) isContainer() bool { return false }
func (n *LiteralNode) isEmpty() bool     { return true }

// Multi-line strings render triple quoted over several lines, so they
// are not single leafed. Strings containing "\n\r" cannot use the
// triple quoted form and stay on one line.
func (n *LiteralNode) isSingleLeafed() bool {
	if n.Literal.Datatype.Value == "" || n.Literal.Datatype == rdf.XSDString || n.Literal.Lang != "" {
		v := n.Literal.Lexical
		if strings.Contains(v, "\n") && !strings.Contains(v, "\n\r") {
			return false
		}
	}
	return true
}

// QuotedTripleNode is an RDF-star quoted triple << s p o >>.
type QuotedTripleNode struct {
	Subject   Node
	Predicate *NamedNode
	Object    Node
}

func (n *QuotedTripleNode) isContainer() bool    { return true }
func (n *QuotedTripleNode) isEmpty() bool        { return false }
func (n *QuotedTripleNode) isSingleLeafed() bool { return false }

// PredicateEntry groups one predicate's objects under a subject or
// inlined blank node.
type PredicateEntry struct {
	Predicate *NamedNode
	Objects   []Node
}

func (p *PredicateEntry) isSingleLeafed() bool {
	return len(p.Objects) == 1 && p.Objects[0].isSingleLeafed()
}

// SubjectEntry is a top level subject block.
type SubjectEntry struct {
	Subject    Node
	Predicates []*PredicateEntry
}

// Tree is the whole document between the prefix header and EOF.
type Tree struct {
	Entries []*SubjectEntry
}
