package format

import (
	"errors"

	"github.com/elevont/prttl/rdf"
)

// ErrCommentsDropped is returned when the source document contains
// comments and Force is not set. Comments do not survive the
// parse-sort-serialize round trip, so rewriting would lose them.
var ErrCommentsDropped = errors.New("format: input contains comments that would be dropped")

// Format pretty-prints a parsed Turtle document. The triples are
// regrouped, sorted and serialized with deterministic layout, so the
// result depends only on the graph, the declared prefixes and base and
// the options.
func Format(input *rdf.Input, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if input.ContainsComments && !opts.Force {
		return "", ErrCommentsDropped
	}
	if opts.CanonicalizeBlankNodes {
		input = rdf.Canonicalize(input)
	}
	cls := classify(input.Graph, opts)
	tree := buildTree(input, cls, opts)
	sortTree(tree, newSortContext(input, opts))
	return encodeTree(tree, input, cls, opts), nil
}

// FormatString parses and formats a Turtle document in one step.
func FormatString(document string, opts *Options) (string, error) {
	input, err := rdf.ParseTurtleString(document)
	if err != nil {
		return "", err
	}
	return Format(input, opts)
}
