package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elevont/prttl/rdf"
)

func TestEncodePanicsOnUnanonymizedBlankNode(t *testing.T) {
	cls := &classification{unreferenced: map[string]struct{}{"orphan": {}}}
	tree := &Tree{Entries: []*SubjectEntry{{
		Subject: &BlankLabelNode{Label: "orphan"},
		Predicates: []*PredicateEntry{{
			Predicate: &NamedNode{IRI: rdf.IRI{Value: "http://example.com/p"}, Form: NamePlain},
			Objects:   []Node{&LiteralNode{Literal: rdf.Literal{Lexical: "v"}}},
		}},
	}}}
	assert.Panics(t, func() {
		encodeTree(tree, rdf.NewInput(), cls, DefaultOptions())
	})
}

func TestPrintQuotedStr(t *testing.T) {
	var out strings.Builder
	printQuotedStr(&out, "a\"b\nc\\d\x01")
	assert.Equal(t, `"a\"b\nc\\d"`, out.String())
}

func TestPrintUnquotedStr(t *testing.T) {
	t.Run("every third quote is escaped", func(t *testing.T) {
		var out strings.Builder
		printUnquotedStr(&out, `x"""y`)
		assert.Equal(t, `"""x""\"y"""`, out.String())
	})

	t.Run("trailing quote is escaped", func(t *testing.T) {
		var out strings.Builder
		printUnquotedStr(&out, `x"`)
		assert.Equal(t, `"""x\""""`, out.String())
	})
}

func TestEscapeLocalName(t *testing.T) {
	cases := []struct {
		in    string
		out   string
		valid bool
	}{
		{"name", "name", true},
		{"a.b", "a.b", true},
		{"a.b.", "a.b\\.", true},
		{"a,b", "a\\,b", true},
		{"1x", "1x", true},
		{"has space", "", false},
	}
	for _, c := range cases {
		got, ok := escapeLocalName(c.in)
		assert.Equal(t, c.valid, ok, c.in)
		if c.valid {
			assert.Equal(t, c.out, got, c.in)
		}
	}
}
