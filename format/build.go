package format

import (
	"sort"
	"strings"

	"github.com/elevont/prttl/rdf"
)

// builder assembles the render tree from the parsed graph, the
// blank-node classification and the declared prefixes.
type builder struct {
	input *rdf.Input
	opts  *Options
	cls   *classification

	// inlining guards against revisiting a node already being built.
	inlining map[string]struct{}
}

func buildTree(input *rdf.Input, cls *classification, opts *Options) *Tree {
	b := &builder{
		input:    input,
		opts:     opts,
		cls:      cls,
		inlining: make(map[string]struct{}),
	}
	return b.build()
}

func (b *builder) build() *Tree {
	tree := &Tree{}
	done := make(map[string]struct{})
	for _, subj := range b.subjects() {
		key := subj.String()
		if _, ok := done[key]; ok {
			continue
		}
		done[key] = struct{}{}
		entry := b.buildSubject(subj)
		if entry != nil {
			tree.Entries = append(tree.Entries, entry)
		}
	}
	return tree
}

// subjects returns every subject term in first-appearance order,
// followed by any subject the order list missed (list expansion can
// introduce blank subjects the reader never saw).
func (b *builder) subjects() []rdf.Term {
	seen := make(map[string]struct{})
	var out []rdf.Term
	for _, s := range b.input.SubjectOrder {
		key := s.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	var extra []rdf.Term
	for _, t := range b.input.Graph.Triples() {
		key := t.S.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		extra = append(extra, t.S)
	}
	sort.Slice(extra, func(i, j int) bool {
		return extra[i].String() < extra[j].String()
	})
	return append(out, extra...)
}

// buildSubject constructs one top-level entry, or nil when every
// triple of the subject is consumed elsewhere (inlined blank node,
// list interior).
func (b *builder) buildSubject(subj rdf.Term) *SubjectEntry {
	if bn, ok := subj.(rdf.BlankNode); ok {
		if _, nested := b.cls.nestable[bn.ID]; nested {
			return nil
		}
		if ch, isHead := b.cls.collections[bn.ID]; isHead {
			preds := b.buildPredicates(subj)
			if len(preds) == 0 && !ch.HasHeadExtras {
				// A plain list only renders where it is referenced.
				if _, unref := b.cls.unreferenced[bn.ID]; !unref {
					return nil
				}
			}
			return &SubjectEntry{
				Subject:    b.collectionNode(bn.ID, ch),
				Predicates: preds,
			}
		}
		if _, anon := b.cls.unreferenced[bn.ID]; anon {
			preds := b.buildPredicates(subj)
			if len(preds) == 0 {
				return nil
			}
			return &SubjectEntry{
				Subject: &BlankInlineNode{Label: bn.ID, Predicates: preds},
			}
		}
	}

	preds := b.buildPredicates(subj)
	if len(preds) == 0 {
		return nil
	}
	return &SubjectEntry{Subject: b.node(subj), Predicates: preds}
}

// buildPredicates groups the live triples of a subject by predicate,
// skipping list plumbing.
func (b *builder) buildPredicates(subj rdf.Term) []*PredicateEntry {
	triples := b.input.Graph.TriplesForSubject(subj)
	var order []rdf.IRI
	objects := make(map[string][]rdf.Term)
	for _, t := range triples {
		if b.cls.isConsumed(t) {
			continue
		}
		key := t.P.Value
		if _, ok := objects[key]; !ok {
			order = append(order, t.P)
		}
		objects[key] = append(objects[key], t.O)
	}
	entries := make([]*PredicateEntry, 0, len(order))
	for _, p := range order {
		entry := &PredicateEntry{Predicate: b.namedNode(p)}
		for _, o := range objects[p.Value] {
			entry.Objects = append(entry.Objects, b.node(o))
		}
		entries = append(entries, entry)
	}
	return entries
}

// node converts a term into its render form, inlining blank nodes and
// folding lists where the classification allows.
func (b *builder) node(t rdf.Term) Node {
	switch t := t.(type) {
	case rdf.IRI:
		if t == rdf.RDFNil {
			return &CollectionNode{}
		}
		return b.namedNode(t)
	case rdf.BlankNode:
		return b.blankNode(t)
	case rdf.Literal:
		return b.literalNode(t)
	case rdf.TripleTerm:
		return b.quotedNode(t)
	}
	return nil
}

// quotedNode converts a quoted triple. The grammar allows only IRIs,
// labeled blank nodes, literals and nested quoted triples inside
// << >>, so blank nodes are never inlined here.
func (b *builder) quotedNode(t rdf.TripleTerm) *QuotedTripleNode {
	part := func(term rdf.Term) Node {
		switch term := term.(type) {
		case rdf.IRI:
			return b.namedNode(term)
		case rdf.BlankNode:
			return &BlankLabelNode{Label: term.ID}
		case rdf.Literal:
			return b.literalNode(term)
		case rdf.TripleTerm:
			return b.quotedNode(term)
		}
		return nil
	}
	return &QuotedTripleNode{
		Subject:   part(t.S),
		Predicate: b.namedNode(t.P),
		Object:    part(t.O),
	}
}

func (b *builder) blankNode(bn rdf.BlankNode) Node {
	if _, busy := b.inlining[bn.ID]; busy {
		return &BlankLabelNode{Label: bn.ID}
	}
	if ch, isHead := b.cls.collections[bn.ID]; isHead && !ch.HasHeadExtras {
		return b.collectionNode(bn.ID, ch)
	}
	if _, nested := b.cls.nestable[bn.ID]; nested {
		b.inlining[bn.ID] = struct{}{}
		preds := b.buildPredicates(bn)
		delete(b.inlining, bn.ID)
		return &BlankInlineNode{Label: bn.ID, Predicates: preds}
	}
	return &BlankLabelNode{Label: bn.ID}
}

func (b *builder) collectionNode(label string, ch *chain) *CollectionNode {
	b.inlining[label] = struct{}{}
	node := &CollectionNode{HeadLabel: label}
	for _, el := range ch.Elements {
		node.Elements = append(node.Elements, b.node(el))
	}
	delete(b.inlining, label)
	return node
}

// namedNode abbreviates an IRI against the declared prefixes, then the
// base, falling back to the plain angle-bracket form.
func (b *builder) namedNode(iri rdf.IRI) *NamedNode {
	ns, local, splittable := splitNamespace(iri.Value)
	if splittable {
		if prefix, ok := b.input.InversePrefixes[ns]; ok {
			if escaped, valid := escapeLocalName(local); valid {
				return &NamedNode{IRI: iri, Form: NamePrefixed, Prefix: prefix, Local: escaped}
			}
		}
	}
	if base := b.input.Base; base != "" && strings.HasPrefix(iri.Value, base) {
		return &NamedNode{IRI: iri, Form: NameBased, Local: iri.Value[len(base):]}
	}
	return &NamedNode{IRI: iri, Form: NamePlain}
}

func (b *builder) literalNode(lit rdf.Literal) *LiteralNode {
	node := &LiteralNode{Literal: lit}
	if lit.Lang == "" && lit.Datatype.Value != "" && lit.Datatype != rdf.XSDString {
		// Numeric and boolean literals usually render bare, but the
		// encoder falls back to this typed form when the lexical value
		// does not fit the bare grammar.
		node.NiceDatatype = b.namedNode(lit.Datatype)
	}
	return node
}

// splitNamespace splits an IRI at the last '#', else the last '/'.
func splitNamespace(iri string) (ns, local string, ok bool) {
	if i := strings.LastIndexByte(iri, '#'); i >= 0 {
		return iri[:i+1], iri[i+1:], true
	}
	if i := strings.LastIndexByte(iri, '/'); i >= 0 {
		return iri[:i+1], iri[i+1:], true
	}
	return "", "", false
}
