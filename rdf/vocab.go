package rdf

// RDFNS is the base IRI prefix for core RDF vocabulary terms.
const RDFNS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// XSDNS is the base IRI prefix for XML Schema datatypes.
const XSDNS = "http://www.w3.org/2001/XMLSchema#"

// PrtyrNS is the base IRI prefix of the pretty-printing helper vocabulary.
// Its annotations are consumed at sort time and stripped from output.
const PrtyrNS = "http://w3id.org/oseg/ont/prtyr#"

// Core RDF vocabulary IRIs.
var (
	// RDFType is the rdf:type predicate, rendered as "a" in Turtle.
	RDFType = IRI{Value: RDFNS + "type"}
	// RDFFirst links a list node to its element.
	RDFFirst = IRI{Value: RDFNS + "first"}
	// RDFRest links a list node to the remainder of the list.
	RDFRest = IRI{Value: RDFNS + "rest"}
	// RDFNil terminates a well-formed list.
	RDFNil = IRI{Value: RDFNS + "nil"}
	// RDFList is the class of list nodes.
	RDFList = IRI{Value: RDFNS + "List"}
	// RDFLangString is the implicit datatype of language-tagged literals.
	RDFLangString = IRI{Value: RDFNS + "langString"}
)

// XSD datatype IRIs the Turtle grammar abbreviates.
var (
	XSDString  = IRI{Value: XSDNS + "string"}
	XSDBoolean = IRI{Value: XSDNS + "boolean"}
	XSDInteger = IRI{Value: XSDNS + "integer"}
	XSDDecimal = IRI{Value: XSDNS + "decimal"}
	XSDDouble  = IRI{Value: XSDNS + "double"}
)

// SortingID is the annotation predicate carrying an explicit sort index
// for a blank node. Indexes are non-negative integers, lower sorts first.
var SortingID = IRI{Value: PrtyrNS + "sortingId"}
