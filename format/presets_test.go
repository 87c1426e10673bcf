package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPredicateOrder(t *testing.T) {
	out, err := ExpandPredicateOrder([]string{"ex:first", "@ontology", "ex:last"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ex:first",
		"http://www.w3.org/1999/02/22-rdf-syntax-ns#type",
		"http://www.w3.org/2000/01/rdf-schema#label",
		"http://www.w3.org/2000/01/rdf-schema#comment",
		"ex:last",
	}, out)
}

func TestExpandOrderCustomPresetWinsOverBuiltin(t *testing.T) {
	custom := map[string][]string{"ontology": {"ex:only"}}
	out, err := ExpandPredicateOrder([]string{"@ontology"}, custom)
	require.NoError(t, err)
	assert.Equal(t, []string{"ex:only"}, out)
}

func TestExpandOrderUnknownPreset(t *testing.T) {
	_, err := ExpandSubjectTypeOrder([]string{"@nope"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestExpandOrderPassesPlainEntriesThrough(t *testing.T) {
	in := []string{"a", "<http://example.com/p>", "ex:p"}
	out, err := ExpandSubjectTypeOrder(in, nil)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestPredicateOrderPresetRanksType(t *testing.T) {
	opts := DefaultOptions()
	var err error
	opts.PredicateOrder, err = ExpandPredicateOrder([]string{"@ontology"}, nil)
	require.NoError(t, err)
	out, err := FormatString(`@prefix ex: <http://example.com/> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
ex:a ex:p "x" ; rdfs:comment "c" ; rdfs:label "l" ; a ex:T .
`, opts)
	require.NoError(t, err)
	assert.Equal(t, `@prefix ex: <http://example.com/> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .

ex:a
  a ex:T ;
  rdfs:label "l" ;
  rdfs:comment "c" ;
  ex:p "x" ;
  .

`, out)
}
