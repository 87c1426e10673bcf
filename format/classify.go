package format

import (
	"github.com/charmbracelet/log"

	"github.com/elevont/prttl/rdf"
)

// chain is one well-formed rdf:first/rdf:rest list found in the graph.
type chain struct {
	// Elements are the rdf:first objects in list order.
	Elements []rdf.Term
	// HasHeadExtras reports that the head carries triples beyond the
	// list shape; such a chain may only render in subject position.
	HasHeadExtras bool
}

// classification is what the tree builder needs to know about every
// blank node: which are list heads, which triples the lists consume,
// which nodes may be inlined and which must stay anonymous.
type classification struct {
	collections  map[string]*chain
	consumed     map[string]struct{}
	nestable     map[string]struct{}
	unreferenced map[string]struct{}
	// quotedRefs holds blank nodes mentioned inside quoted triples.
	// Those can only carry a label there, so they are excluded from
	// anonymizing, inlining and collection folding.
	quotedRefs map[string]struct{}
}

func (c *classification) isConsumed(t rdf.Triple) bool {
	_, ok := c.consumed[classifyTripleKey(t)]
	return ok
}

func classifyTripleKey(t rdf.Triple) string {
	return t.S.String() + "\x00" + t.P.Value + "\x00" + t.O.String()
}

// classify inspects the graph ahead of tree construction. With nesting
// disabled it returns an empty classification, leaving every blank node
// labeled and every list in raw triples.
func classify(g *rdf.Graph, opts *Options) *classification {
	cls := &classification{
		collections:  make(map[string]*chain),
		consumed:     make(map[string]struct{}),
		nestable:     make(map[string]struct{}),
		unreferenced: make(map[string]struct{}),
		quotedRefs:   make(map[string]struct{}),
	}
	if !opts.MaxNesting {
		return cls
	}
	collectQuotedRefs(g, cls)
	extractCollections(g, cls, opts.logger())
	evaluateBlankNodes(g, cls)
	dropInlineCycles(g, cls)
	return cls
}

// collectQuotedRefs records every blank node appearing inside a quoted
// triple anywhere in the graph.
func collectQuotedRefs(g *rdf.Graph, cls *classification) {
	var note func(t rdf.Term, inQuoted bool)
	note = func(t rdf.Term, inQuoted bool) {
		switch t := t.(type) {
		case rdf.BlankNode:
			if inQuoted {
				cls.quotedRefs[t.ID] = struct{}{}
			}
		case rdf.TripleTerm:
			note(t.S, true)
			note(t.O, true)
		}
	}
	for _, t := range g.Triples() {
		note(t.S, false)
		note(t.O, false)
	}
}

// extractCollections finds candidate list heads (blank subjects of
// rdf:first that no rdf:rest points at) and walks each chain, checking
// the list shape node by node.
func extractCollections(g *rdf.Graph, cls *classification, logger *log.Logger) {
	var heads []rdf.BlankNode
	seen := make(map[string]struct{})
	for _, t := range g.Triples() {
		bn, ok := t.S.(rdf.BlankNode)
		if !ok || t.P != rdf.RDFFirst {
			continue
		}
		if _, dup := seen[bn.ID]; dup {
			continue
		}
		seen[bn.ID] = struct{}{}
		if len(g.SubjectsForPredicateObject(rdf.RDFRest, bn)) == 0 {
			heads = append(heads, bn)
		}
	}

	objRefs := objectRefCounts(g)
	for _, head := range heads {
		ch, involved := extractChain(g, head, logger)
		if ch == nil {
			continue
		}
		// A shared list head cannot be rendered inline without
		// duplicating the list, and a head with extra triples loses
		// them anywhere but subject position.
		if _, quoted := cls.quotedRefs[head.ID]; quoted {
			continue
		}
		refs := objRefs[head.ID]
		if refs > 1 {
			continue
		}
		if ch.HasHeadExtras && refs > 0 {
			continue
		}
		cls.collections[head.ID] = ch
		for _, t := range involved {
			cls.consumed[classifyTripleKey(t)] = struct{}{}
		}
	}
}

// extractChain walks one candidate chain. Every node must have exactly
// one rdf:first and one rdf:rest; intermediate nodes may carry nothing
// beyond those and an optional rdf:type rdf:List. A literal or quoted
// triple in rest position is a reported error, any other shape defect
// degrades silently to raw triples.
func extractChain(g *rdf.Graph, head rdf.BlankNode, logger *log.Logger) (*chain, []rdf.Triple) {
	cur := head
	visited := map[string]struct{}{head.ID: {}}
	ch := &chain{}
	var involved []rdf.Triple
	for {
		firsts := g.ObjectsForSubjectPredicate(cur, rdf.RDFFirst)
		if len(firsts) != 1 {
			return nil, nil
		}
		involved = append(involved, rdf.Triple{S: cur, P: rdf.RDFFirst, O: firsts[0]})
		ch.Elements = append(ch.Elements, firsts[0])

		rests := g.ObjectsForSubjectPredicate(cur, rdf.RDFRest)
		if len(rests) != 1 {
			return nil, nil
		}
		involved = append(involved, rdf.Triple{S: cur, P: rdf.RDFRest, O: rests[0]})

		listNative := 2
		types := g.ObjectsForSubjectPredicate(cur, rdf.RDFType)
		if len(types) > 1 && cur != head {
			return nil, nil
		}
		for _, ty := range types {
			if rdf.TermEqual(ty, rdf.RDFList) {
				involved = append(involved, rdf.Triple{S: cur, P: rdf.RDFType, O: rdf.RDFList})
				listNative++
				break
			}
		}
		subjTriples := len(g.TriplesForSubject(cur))
		if cur != head && subjTriples != listNative {
			return nil, nil
		}
		if cur == head && subjTriples != listNative {
			ch.HasHeadExtras = true
		}

		switch rest := rests[0].(type) {
		case rdf.BlankNode:
			if _, looped := visited[rest.ID]; looped {
				return nil, nil
			}
			visited[rest.ID] = struct{}{}
			cur = rest
		case rdf.IRI:
			if rest == rdf.RDFNil {
				return ch, involved
			}
			return nil, nil
		default:
			logger.Error("invalid term in list chain position", "term", rests[0].String())
			return nil, nil
		}
	}
}

func objectRefCounts(g *rdf.Graph) map[string]int {
	counts := make(map[string]int)
	for _, t := range g.Triples() {
		if bn, ok := t.O.(rdf.BlankNode); ok {
			counts[bn.ID]++
		}
	}
	return counts
}

// evaluateBlankNodes splits blank nodes into nestable (referenced
// exactly once as object) and unreferenced (subject only, rendered
// anonymously at top level). Nodes referenced more than once keep their
// labels.
func evaluateBlankNodes(g *rdf.Graph, cls *classification) {
	subjectBNs := make(map[string]struct{})
	objectCounts := objectRefCounts(g)
	for _, t := range g.Triples() {
		if bn, ok := t.S.(rdf.BlankNode); ok {
			subjectBNs[bn.ID] = struct{}{}
		}
	}
	for label := range subjectBNs {
		if _, quoted := cls.quotedRefs[label]; quoted {
			continue
		}
		if objectCounts[label] == 0 {
			cls.unreferenced[label] = struct{}{}
		}
	}
	for label, count := range objectCounts {
		if _, quoted := cls.quotedRefs[label]; quoted {
			continue
		}
		if count == 1 {
			cls.nestable[label] = struct{}{}
		}
	}
}

// dropInlineCycles unmarks nestable blank nodes that form reference
// cycles, which would otherwise recurse forever during inlining. The
// nodes fall back to labeled form.
func dropInlineCycles(g *rdf.Graph, cls *classification) {
	const (
		white = iota
		gray
		black
	)
	color := make(map[string]int)
	var stack []string

	var visit func(label string)
	visit = func(label string) {
		color[label] = gray
		stack = append(stack, label)
		for _, t := range g.TriplesForSubject(rdf.BlankNode{ID: label}) {
			obj, ok := t.O.(rdf.BlankNode)
			if !ok {
				continue
			}
			if _, nestable := cls.nestable[obj.ID]; !nestable {
				continue
			}
			switch color[obj.ID] {
			case white:
				visit(obj.ID)
			case gray:
				// Back edge: everything from obj up the stack cycles.
				for i := len(stack) - 1; i >= 0; i-- {
					delete(cls.nestable, stack[i])
					if stack[i] == obj.ID {
						break
					}
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[label] = black
	}

	for label := range cls.nestable {
		if color[label] == white {
			visit(label)
		}
	}
}
