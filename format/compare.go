package format

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/elevont/prttl/rdf"
)

// sortContext carries everything term comparison needs: the parsed
// input for appearance order, resolved rank tables and the memoized
// sorting IDs of blank nodes.
type sortContext struct {
	input  *rdf.Input
	opts   *Options
	logger *log.Logger

	predicateRank   map[string]int
	subjectTypeRank map[string]int
	sortingIDs      map[string]sortingID
}

type sortingID struct {
	present bool
	value   uint32
}

func newSortContext(input *rdf.Input, opts *Options) *sortContext {
	return &sortContext{
		input:           input,
		opts:            opts,
		logger:          opts.logger(),
		predicateRank:   resolveRanks(opts.PredicateOrder, input),
		subjectTypeRank: resolveRanks(opts.SubjectTypeOrder, input),
		sortingIDs:      make(map[string]sortingID),
	}
}

// resolveRanks expands a configured IRI list, where entries may be
// prefixed names, angle-bracketed IRIs or plain IRIs, into a rank
// table keyed by full IRI.
func resolveRanks(order []string, input *rdf.Input) map[string]int {
	ranks := make(map[string]int, len(order))
	for i, entry := range order {
		iri := entry
		switch {
		case entry == "a":
			iri = rdf.RDFType.Value
		case strings.HasPrefix(entry, "<") && strings.HasSuffix(entry, ">"):
			iri = entry[1 : len(entry)-1]
		default:
			if colon := strings.IndexByte(entry, ':'); colon >= 0 {
				prefix, local := entry[:colon], entry[colon+1:]
				if ns, ok := input.Prefixes[prefix]; ok && !strings.Contains(local, "/") {
					iri = ns + local
				}
			}
		}
		if _, taken := ranks[iri]; !taken {
			ranks[iri] = i
		}
	}
	return ranks
}

// variantRank orders node kinds against each other. Named nodes sort
// before everything, literals after everything.
func variantRank(n Node) int {
	switch n.(type) {
	case *NamedNode:
		return 0
	case *QuotedTripleNode:
		return 1
	case *CollectionNode:
		return 2
	case *BlankInlineNode:
		return 3
	case *BlankLabelNode:
		return 4
	case *LiteralNode:
		return 5
	}
	return 6
}

func (c *sortContext) compareNodes(a, b Node) int {
	if ra, rb := variantRank(a), variantRank(b); ra != rb {
		return ra - rb
	}
	switch an := a.(type) {
	case *NamedNode:
		return compareNamed(an, b.(*NamedNode))
	case *QuotedTripleNode:
		return c.compareQuoted(an, b.(*QuotedTripleNode))
	case *CollectionNode:
		return c.compareCollections(an, b.(*CollectionNode))
	case *BlankInlineNode:
		return c.compareBlankLabels(an.Label, b.(*BlankInlineNode).Label)
	case *BlankLabelNode:
		return c.compareBlankLabels(an.Label, b.(*BlankLabelNode).Label)
	case *LiteralNode:
		return compareLiterals(an, b.(*LiteralNode))
	}
	return 0
}

// compareNamed orders by abbreviation form, prefixed before based
// before plain, then lexically within the form.
func compareNamed(a, b *NamedNode) int {
	if a.Form != b.Form {
		return int(a.Form) - int(b.Form)
	}
	switch a.Form {
	case NamePrefixed:
		if d := strings.Compare(a.Prefix, b.Prefix); d != 0 {
			return d
		}
		return strings.Compare(a.Local, b.Local)
	case NameBased:
		return strings.Compare(a.Local, b.Local)
	default:
		return strings.Compare(a.IRI.Value, b.IRI.Value)
	}
}

// comparePredicates applies the configured predicate ranking. Ranked
// predicates sort before unranked ones, rdf:type before every other
// unranked predicate.
func (c *sortContext) comparePredicates(a, b *NamedNode) int {
	ra, aRanked := c.predicateRank[a.IRI.Value]
	rb, bRanked := c.predicateRank[b.IRI.Value]
	switch {
	case aRanked && bRanked:
		if ra != rb {
			return ra - rb
		}
	case aRanked:
		return -1
	case bRanked:
		return 1
	}
	aType := a.IRI == rdf.RDFType
	bType := b.IRI == rdf.RDFType
	if aType != bType {
		if aType {
			return -1
		}
		return 1
	}
	return compareNamed(a, b)
}

// compareLiterals orders typed literals before plain ones, then by
// datatype, language and finally the lexical value.
func compareLiterals(a, b *LiteralNode) int {
	aTyped := a.NiceDatatype != nil
	bTyped := b.NiceDatatype != nil
	if aTyped != bTyped {
		if aTyped {
			return -1
		}
		return 1
	}
	if d := strings.Compare(a.Literal.Datatype.Value, b.Literal.Datatype.Value); d != 0 {
		return d
	}
	aLang := a.Literal.Lang != ""
	bLang := b.Literal.Lang != ""
	if aLang != bLang {
		if aLang {
			return -1
		}
		return 1
	}
	if d := strings.Compare(a.Literal.Lang, b.Literal.Lang); d != 0 {
		return d
	}
	return strings.Compare(a.Literal.Lexical, b.Literal.Lexical)
}

// compareQuoted orders by subject, predicate, object. The configured
// rank lists order siblings and do not reach inside << >> terms.
func (c *sortContext) compareQuoted(a, b *QuotedTripleNode) int {
	if d := c.compareNodes(a.Subject, b.Subject); d != 0 {
		return d
	}
	if d := compareNamed(a.Predicate, b.Predicate); d != 0 {
		return d
	}
	return c.compareNodes(a.Object, b.Object)
}

// compareCollections orders element-wise, a shorter list before a
// longer one sharing its prefix, with the head labels as a last
// tie-break.
func (c *sortContext) compareCollections(a, b *CollectionNode) int {
	n := len(a.Elements)
	if len(b.Elements) < n {
		n = len(b.Elements)
	}
	for i := 0; i < n; i++ {
		if d := c.compareNodes(a.Elements[i], b.Elements[i]); d != 0 {
			return d
		}
	}
	if d := len(a.Elements) - len(b.Elements); d != 0 {
		return d
	}
	return strings.Compare(a.HeadLabel, b.HeadLabel)
}

// compareBlankLabels prefers explicit sorting IDs, then the order the
// nodes first appeared as objects in the source, then the labels.
func (c *sortContext) compareBlankLabels(a, b string) int {
	sa := c.sortingIDFor(a)
	sb := c.sortingIDFor(b)
	switch {
	case sa.present && sb.present:
		if sa.value != sb.value {
			if sa.value < sb.value {
				return -1
			}
			return 1
		}
	case sa.present:
		return -1
	case sb.present:
		return 1
	}
	ia := c.input.BlankObjectIndex(a)
	ib := c.input.BlankObjectIndex(b)
	if ia >= 0 && ib >= 0 && ia != ib {
		return ia - ib
	}
	if ia >= 0 && ib < 0 {
		return -1
	}
	if ib >= 0 && ia < 0 {
		return 1
	}
	return strings.Compare(a, b)
}

// sortingIDFor fetches and memoizes the sorting hint attached to a
// blank node. A malformed value is reported and treated as absent.
func (c *sortContext) sortingIDFor(label string) sortingID {
	if id, ok := c.sortingIDs[label]; ok {
		return id
	}
	id := sortingID{}
	if c.opts.SortingIDs {
		objs := c.input.Graph.ObjectsForSubjectPredicate(rdf.BlankNode{ID: label}, rdf.SortingID)
		for _, o := range objs {
			lit, ok := o.(rdf.Literal)
			if !ok {
				continue
			}
			v, err := strconv.ParseUint(lit.Lexical, 10, 32)
			if err != nil {
				c.logger.Warn("ignoring malformed sorting ID",
					"blankNode", label, "value", lit.Lexical)
				continue
			}
			id = sortingID{present: true, value: uint32(v)}
			break
		}
	}
	c.sortingIDs[label] = id
	return id
}

// compareSubjects ranks subjects by their rdf:type against the
// configured type order before falling back to term comparison.
func (c *sortContext) compareSubjects(a, b *SubjectEntry) int {
	ra, aRanked := c.subjectTypeRankFor(a)
	rb, bRanked := c.subjectTypeRankFor(b)
	switch {
	case aRanked && bRanked:
		if ra != rb {
			return ra - rb
		}
	case aRanked:
		return -1
	case bRanked:
		return 1
	}
	return c.compareNodes(a.Subject, b.Subject)
}

// subjectTypeRankFor returns the best rank among the subject's rdf:type
// objects.
func (c *sortContext) subjectTypeRankFor(e *SubjectEntry) (int, bool) {
	if len(c.subjectTypeRank) == 0 {
		return 0, false
	}
	best, found := 0, false
	for _, p := range e.Predicates {
		if p.Predicate.IRI != rdf.RDFType {
			continue
		}
		for _, o := range p.Objects {
			named, ok := o.(*NamedNode)
			if !ok {
				continue
			}
			if r, ranked := c.subjectTypeRank[named.IRI.Value]; ranked {
				if !found || r < best {
					best, found = r, true
				}
			}
		}
	}
	return best, found
}
