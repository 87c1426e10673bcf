package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elevont/prttl/rdf"
)

func mustFormat(t *testing.T, src string, opts *Options) string {
	t.Helper()
	out, err := FormatString(src, opts)
	require.NoError(t, err)
	return out
}

// requireIsomorphic asserts that two documents describe the same graph
// up to blank node labels.
func requireIsomorphic(t *testing.T, a, b string) {
	t.Helper()
	ia, err := rdf.ParseTurtleString(a)
	require.NoError(t, err)
	ib, err := rdf.ParseTurtleString(b)
	require.NoError(t, err)
	ca := rdf.Canonicalize(ia)
	cb := rdf.Canonicalize(ib)
	require.Equal(t, ca.Graph.Len(), cb.Graph.Len())
	for _, tr := range ca.Graph.Triples() {
		assert.True(t, cb.Graph.Contains(tr), "missing %s %s %s", tr.S, tr.P, tr.O)
	}
}

func TestFormatSortsAndCollapsesSimpleSubjects(t *testing.T) {
	out := mustFormat(t, `@prefix ex: <http://example.com/> .
ex:b ex:p "2" .
ex:a ex:p "1" .
`, nil)
	assert.Equal(t, `@prefix ex: <http://example.com/> .

ex:a ex:p "1" .
ex:b ex:p "2" .
`, out)
}

func TestFormatMultiPredicateBlock(t *testing.T) {
	out := mustFormat(t, `@prefix ex: <http://example.com/> .
ex:a ex:q "x" ; a ex:T ; ex:p "1" , "2" .
`, nil)
	assert.Equal(t, `@prefix ex: <http://example.com/> .

ex:a
  a ex:T ;
  ex:p
    "1" ,
    "2" ;
  ex:q "x" ;
  .

`, out)
}

func TestFormatCollections(t *testing.T) {
	t.Run("multiple elements keep source order", func(t *testing.T) {
		out := mustFormat(t, `@prefix ex: <http://example.com/> .
ex:a ex:p ( ex:y ex:x ) .
`, nil)
		assert.Equal(t, `@prefix ex: <http://example.com/> .

ex:a
  ex:p
    (
      ex:y
      ex:x
    ) ;
  .

`, out)
	})

	t.Run("single element collapses", func(t *testing.T) {
		out := mustFormat(t, `@prefix ex: <http://example.com/> .
ex:a ex:p ( ex:x ) .
`, nil)
		assert.Equal(t, `@prefix ex: <http://example.com/> .

ex:a ex:p ( ex:x ) .
`, out)
	})

	t.Run("empty collection", func(t *testing.T) {
		out := mustFormat(t, `@prefix ex: <http://example.com/> .
ex:a ex:p () .
`, nil)
		assert.Equal(t, `@prefix ex: <http://example.com/> .

ex:a ex:p () .
`, out)
	})
}

func TestFormatBlankNodeNesting(t *testing.T) {
	t.Run("single reference inlines", func(t *testing.T) {
		out := mustFormat(t, `@prefix ex: <http://example.com/> .
ex:a ex:p [ ex:q "v" ] .
`, nil)
		assert.Equal(t, `@prefix ex: <http://example.com/> .

ex:a ex:p [ ex:q "v" ] .
`, out)
	})

	t.Run("unreferenced subject is anonymous", func(t *testing.T) {
		out := mustFormat(t, `@prefix ex: <http://example.com/> .
[ ex:q "v" ] .
`, nil)
		assert.Equal(t, `@prefix ex: <http://example.com/> .

[ ex:q "v" ] .

`, out)
	})

	t.Run("shared blank node keeps its label", func(t *testing.T) {
		out := mustFormat(t, `@prefix ex: <http://example.com/> .
ex:a ex:p _:s .
ex:b ex:p _:s .
_:s ex:q "v" .
`, nil)
		assert.Equal(t, `@prefix ex: <http://example.com/> .

ex:a ex:p _:s .
ex:b ex:p _:s .
_:s ex:q "v" .
`, out)
	})
}

func TestFormatSortingIDs(t *testing.T) {
	src := `@prefix ex: <http://example.com/> .
@prefix prtyr: <http://w3id.org/oseg/ont/prtyr#> .
ex:a ex:p _:x , _:y .
ex:b ex:p _:x , _:y .
_:x prtyr:sortingId 2 .
_:y prtyr:sortingId 1 .
`
	out := mustFormat(t, src, nil)
	assert.Equal(t, `@prefix ex: <http://example.com/> .
@prefix prtyr: <http://w3id.org/oseg/ont/prtyr#> .

ex:a
  ex:p
    _:y ,
    _:x ;
  .

ex:b
  ex:p
    _:y ,
    _:x ;
  .

_:y prtyr:sortingId 1 .
_:x prtyr:sortingId 2 .
`, out)

	// With the hints disabled the labels fall back to appearance order.
	opts := DefaultOptions()
	opts.SortingIDs = false
	out = mustFormat(t, src, opts)
	assert.Contains(t, out, "    _:x ,\n    _:y ;")
}

func TestFormatKeepsSortingIDTriples(t *testing.T) {
	// Sorting hints order blank nodes but remain ordinary triples,
	// on blank and named subjects alike.
	src := `@prefix ex: <http://example.com/> .
@prefix prtyr: <http://w3id.org/oseg/ont/prtyr#> .
ex:a prtyr:sortingId 5 .
ex:a ex:p _:n .
ex:b ex:p _:n .
_:n prtyr:sortingId 1 .
`
	out := mustFormat(t, src, nil)
	assert.Contains(t, out, "ex:a\n  ex:p _:n ;\n  prtyr:sortingId 5 ;")
	assert.Contains(t, out, "_:n prtyr:sortingId 1 .")
	requireIsomorphic(t, src, out)
}

func TestFormatBaseHandling(t *testing.T) {
	t.Run("declared base is emitted and applied", func(t *testing.T) {
		out := mustFormat(t, `@base <http://example.org/> .
<a> <p> <b> .
`, nil)
		assert.Equal(t, `@base <http://example.org/> .

<a> <p> <b> .
`, out)
	})

	t.Run("substitute base stays invisible", func(t *testing.T) {
		out := mustFormat(t, "<a> <p> <b> .\n", nil)
		assert.Equal(t, "\n<a> <p> <b> .\n", out)
	})
}

func TestFormatSparqlSyntax(t *testing.T) {
	opts := DefaultOptions()
	opts.SPARQLSyntax = true
	out := mustFormat(t, `@base <http://example.org/> .
@prefix ex: <http://example.com/> .
ex:a <p> ex:b .
`, opts)
	assert.Equal(t, `BASE <http://example.org/>
PREFIX ex: <http://example.com/>

ex:a <p> ex:b .
`, out)
}

func TestFormatTypeShorthandOnlyForPredicates(t *testing.T) {
	out := mustFormat(t, `@prefix ex: <http://example.com/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
ex:a a ex:T .
ex:b ex:p rdf:type .
`, nil)
	assert.Equal(t, `@prefix ex: <http://example.com/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

ex:a a ex:T .
ex:b ex:p rdf:type .
`, out)
}

func TestFormatQuotedTripleSubject(t *testing.T) {
	out := mustFormat(t, `@prefix ex: <http://example.com/> .
<< ex:a ex:b ex:c >> ex:certainty 0.9 .
`, nil)
	assert.Equal(t, `@prefix ex: <http://example.com/> .

<< ex:a ex:b ex:c >> ex:certainty 0.9 .
`, out)
}

func TestFormatLiteralForms(t *testing.T) {
	out := mustFormat(t, `@prefix ex: <http://example.com/> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
ex:a ex:p "NaN"^^xsd:double .
ex:a ex:q "1."^^xsd:decimal .
`, nil)
	assert.Equal(t, `@prefix ex: <http://example.com/> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .

ex:a
  ex:p "NaN"^^xsd:double ;
  ex:q "1."^^xsd:decimal ;
  .

`, out)
}

func TestFormatMultilineString(t *testing.T) {
	out := mustFormat(t, `@prefix ex: <http://example.com/> .
ex:a ex:p """two
lines""" .
`, nil)
	assert.Equal(t, `@prefix ex: <http://example.com/> .

ex:a
  ex:p """two
lines""" ;
  .

`, out)
}

func TestFormatLiteralOrdering(t *testing.T) {
	out := mustFormat(t, `@prefix ex: <http://example.com/> .
ex:a ex:p "b" , "a" , "x"@en , "x"@de , 5 .
`, nil)
	assert.Equal(t, `@prefix ex: <http://example.com/> .

ex:a
  ex:p
    5 ,
    "x"@de ,
    "x"@en ,
    "a" ,
    "b" ;
  .

`, out)
}

func TestFormatPredicateOrderOption(t *testing.T) {
	opts := DefaultOptions()
	opts.PredicateOrder = []string{"ex:q"}
	out := mustFormat(t, `@prefix ex: <http://example.com/> .
ex:a ex:p "1" ; a ex:T ; ex:q "2" .
`, opts)
	assert.Equal(t, `@prefix ex: <http://example.com/> .

ex:a
  ex:q "2" ;
  a ex:T ;
  ex:p "1" ;
  .

`, out)
}

func TestFormatSubjectTypeOrderOption(t *testing.T) {
	opts := DefaultOptions()
	opts.SubjectTypeOrder = []string{"ex:Later", "ex:First"}
	out := mustFormat(t, `@prefix ex: <http://example.com/> .
ex:a a ex:First .
ex:b a ex:Later .
ex:c ex:p "u" .
`, opts)
	assert.Equal(t, `@prefix ex: <http://example.com/> .

ex:b a ex:Later .
ex:a a ex:First .
ex:c ex:p "u" .
`, out)
}

func TestFormatLabelAllBlankNodes(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxNesting = false
	out := mustFormat(t, `@prefix ex: <http://example.com/> .
ex:a ex:p [ ex:q "v" ] .
`, opts)
	assert.Equal(t, `@prefix ex: <http://example.com/> .

ex:a ex:p _:genid-prttl-1 .
_:genid-prttl-1 ex:q "v" .
`, out)
}

func TestFormatCommentsNeedForce(t *testing.T) {
	src := `@prefix ex: <http://example.com/> .
# important note
ex:a ex:p ex:b .
`
	_, err := FormatString(src, nil)
	require.ErrorIs(t, err, ErrCommentsDropped)

	opts := DefaultOptions()
	opts.Force = true
	out := mustFormat(t, src, opts)
	assert.NotContains(t, out, "important note")
}

func TestFormatCanonicalizeOption(t *testing.T) {
	format := func(src string) string {
		return mustFormat(t, src, CanonicalOptions())
	}
	a := format(`@prefix ex: <http://example.com/> .
ex:a ex:p _:m .
ex:b ex:p _:m .
_:m ex:q "v" .
`)
	b := format(`@prefix ex: <http://example.com/> .
_:zz ex:q "v" .
ex:b ex:p _:zz .
ex:a ex:p _:zz .
`)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "_:c0")
}

func TestFormatIdempotence(t *testing.T) {
	srcs := []string{
		`@prefix ex: <http://example.com/> .
ex:b ex:p "2" ; ex:q ( ex:x ex:y ) .
ex:a ex:p [ ex:q "v" ; ex:r ex:b ] .
[ ex:note "standalone" ] .
`,
		`@base <http://example.org/> .
@prefix ex: <http://example.com/> .
<a> ex:p "x"@en , "y" , 4.5 , true .
`,
	}
	for _, src := range srcs {
		once := mustFormat(t, src, nil)
		twice := mustFormat(t, once, nil)
		assert.Equal(t, once, twice)
		requireIsomorphic(t, src, once)
	}
}

func TestFormatDegradedListStaysRaw(t *testing.T) {
	src := `@prefix ex: <http://example.com/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
ex:a ex:p _:l .
_:l rdf:first "a" .
_:l rdf:first "b" .
_:l rdf:rest rdf:nil .
`
	out := mustFormat(t, src, nil)
	assert.Contains(t, out, "rdf:first")
	requireIsomorphic(t, src, out)
}
