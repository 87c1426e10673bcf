package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeIsomorphicInputs(t *testing.T) {
	a, err := ParseTurtleString(`@prefix ex: <http://example.com/> .
_:x ex:p "1" .
_:x ex:q _:y .
_:y ex:p "2" .
`)
	require.NoError(t, err)
	b, err := ParseTurtleString(`@prefix ex: <http://example.com/> .
_:other ex:p "2" .
_:node ex:p "1" .
_:node ex:q _:other .
`)
	require.NoError(t, err)

	ca := Canonicalize(a)
	cb := Canonicalize(b)
	require.Equal(t, ca.Graph.Len(), cb.Graph.Len())
	for _, tr := range ca.Graph.Triples() {
		assert.True(t, cb.Graph.Contains(tr), "missing %v %v %v", tr.S, tr.P, tr.O)
	}
}

func TestCanonicalizeRelabelsDeterministically(t *testing.T) {
	in, err := ParseTurtleString(`@prefix ex: <http://example.com/> .
_:a ex:p _:b .
_:b ex:p _:a .
`)
	require.NoError(t, err)
	out := Canonicalize(in)
	labels := map[string]struct{}{}
	for _, tr := range out.Graph.Triples() {
		if bn, ok := tr.S.(BlankNode); ok {
			labels[bn.ID] = struct{}{}
		}
		if bn, ok := tr.O.(BlankNode); ok {
			labels[bn.ID] = struct{}{}
		}
	}
	assert.Equal(t, map[string]struct{}{"c0": {}, "c1": {}}, labels)
}

func TestCanonicalizeLeavesGroundGraphsAlone(t *testing.T) {
	in, err := ParseTurtleString(`@prefix ex: <http://example.com/> .
ex:a ex:p ex:b .
`)
	require.NoError(t, err)
	assert.Same(t, in, Canonicalize(in))
}
