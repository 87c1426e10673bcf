package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphInsertDeduplicates(t *testing.T) {
	g := NewGraph()
	tr := Triple{
		S: IRI{Value: "http://example.com/a"},
		P: IRI{Value: "http://example.com/p"},
		O: Literal{Lexical: "v"},
	}
	assert.True(t, g.Insert(tr))
	assert.False(t, g.Insert(tr))
	assert.Equal(t, 1, g.Len())
}

func TestGraphLookups(t *testing.T) {
	g := NewGraph()
	a := IRI{Value: "http://example.com/a"}
	p := IRI{Value: "http://example.com/p"}
	q := IRI{Value: "http://example.com/q"}
	bn := BlankNode{ID: "node"}

	g.Insert(Triple{S: a, P: p, O: bn})
	g.Insert(Triple{S: a, P: q, O: Literal{Lexical: "x"}})
	g.Insert(Triple{S: bn, P: p, O: Literal{Lexical: "y"}})

	assert.Len(t, g.TriplesForSubject(a), 2)
	assert.Len(t, g.TriplesForSubject(bn), 1)

	objs := g.ObjectsForSubjectPredicate(a, p)
	require.Len(t, objs, 1)
	assert.Equal(t, bn, objs[0])

	subjects := g.SubjectsForPredicateObject(p, bn)
	require.Len(t, subjects, 1)
	assert.Equal(t, a, subjects[0])
}

func TestGraphDistinguishesLiteralShapes(t *testing.T) {
	g := NewGraph()
	s := IRI{Value: "http://example.com/s"}
	p := IRI{Value: "http://example.com/p"}
	g.Insert(Triple{S: s, P: p, O: Literal{Lexical: "x"}})
	g.Insert(Triple{S: s, P: p, O: Literal{Lexical: "x", Lang: "en"}})
	g.Insert(Triple{S: s, P: p, O: Literal{Lexical: "x", Datatype: IRI{Value: XSDNS + "token"}}})
	assert.Equal(t, 3, g.Len())
}

func TestTermEqual(t *testing.T) {
	qt := TripleTerm{
		S: IRI{Value: "http://example.com/a"},
		P: IRI{Value: "http://example.com/b"},
		O: BlankNode{ID: "x"},
	}
	assert.True(t, TermEqual(qt, TripleTerm{
		S: IRI{Value: "http://example.com/a"},
		P: IRI{Value: "http://example.com/b"},
		O: BlankNode{ID: "x"},
	}))
	assert.False(t, TermEqual(qt, IRI{Value: "http://example.com/a"}))
	assert.False(t, TermEqual(IRI{Value: "http://example.com/a"}, BlankNode{ID: "http://example.com/a"}))
}
