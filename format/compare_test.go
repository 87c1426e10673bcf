package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elevont/prttl/rdf"
)

func TestCompareQuotedIgnoresPredicateRank(t *testing.T) {
	input := rdf.NewInput()
	input.Prefixes["ex"] = "http://example.com/"
	opts := DefaultOptions()
	opts.PredicateOrder = []string{"ex:q"}
	ctx := newSortContext(input, opts)

	named := func(local string) *NamedNode {
		return &NamedNode{
			IRI:    rdf.IRI{Value: "http://example.com/" + local},
			Form:   NamePrefixed,
			Prefix: "ex",
			Local:  local,
		}
	}
	withB := &QuotedTripleNode{Subject: named("s"), Predicate: named("b"), Object: named("o")}
	withQ := &QuotedTripleNode{Subject: named("s"), Predicate: named("q"), Object: named("o")}

	// Inside << >> the predicates compare lexically, so b beats the
	// ranked q.
	assert.Negative(t, ctx.compareQuoted(withB, withQ))
	// As siblings the rank still applies.
	assert.Positive(t, ctx.comparePredicates(named("b"), named("q")))
}
