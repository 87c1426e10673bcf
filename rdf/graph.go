package rdf

// Graph is an in-memory set of triples with lookup indexes by subject,
// subject+predicate and predicate+object. Insertion order is preserved
// for iteration; duplicate triples collapse to one.
type Graph struct {
	triples    []Triple
	seen       map[string]struct{}
	bySubject  map[string][]int
	bySubjPred map[string][]int
	byPredObj  map[string][]int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		seen:       make(map[string]struct{}),
		bySubject:  make(map[string][]int),
		bySubjPred: make(map[string][]int),
		byPredObj:  make(map[string][]int),
	}
}

func termKey(t Term) string {
	if t == nil {
		return "?"
	}
	switch x := t.(type) {
	case IRI:
		return "I" + x.Value
	case BlankNode:
		return "B" + x.ID
	case Literal:
		return "L" + x.Lang + "\x00" + x.Datatype.Value + "\x00" + x.Lexical
	case TripleTerm:
		return "T" + termKey(x.S) + "\x01" + x.P.Value + "\x01" + termKey(x.O)
	}
	return "?" + t.String()
}

func tripleKey(t Triple) string {
	return termKey(t.S) + "\x02" + t.P.Value + "\x02" + termKey(t.O)
}

// Insert adds a triple to the graph. It reports whether the triple was
// new; inserting an already present triple is a no-op.
func (g *Graph) Insert(t Triple) bool {
	k := tripleKey(t)
	if _, ok := g.seen[k]; ok {
		return false
	}
	g.seen[k] = struct{}{}
	i := len(g.triples)
	g.triples = append(g.triples, t)
	sk := termKey(t.S)
	g.bySubject[sk] = append(g.bySubject[sk], i)
	g.bySubjPred[sk+"\x02"+t.P.Value] = append(g.bySubjPred[sk+"\x02"+t.P.Value], i)
	pok := t.P.Value + "\x02" + termKey(t.O)
	g.byPredObj[pok] = append(g.byPredObj[pok], i)
	return true
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns all triples in insertion order. The returned slice is
// shared; callers must not modify it.
func (g *Graph) Triples() []Triple { return g.triples }

// Contains reports whether the graph holds the given triple.
func (g *Graph) Contains(t Triple) bool {
	_, ok := g.seen[tripleKey(t)]
	return ok
}

// TriplesForSubject returns the triples whose subject is s, in insertion
// order.
func (g *Graph) TriplesForSubject(s Term) []Triple {
	idx := g.bySubject[termKey(s)]
	out := make([]Triple, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.triples[i])
	}
	return out
}

// ObjectsForSubjectPredicate returns the objects of all triples with the
// given subject and predicate.
func (g *Graph) ObjectsForSubjectPredicate(s Term, p IRI) []Term {
	idx := g.bySubjPred[termKey(s)+"\x02"+p.Value]
	out := make([]Term, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.triples[i].O)
	}
	return out
}

// SubjectsForPredicateObject returns the subjects of all triples with the
// given predicate and object.
func (g *Graph) SubjectsForPredicateObject(p IRI, o Term) []Term {
	idx := g.byPredObj[p.Value+"\x02"+termKey(o)]
	out := make([]Term, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.triples[i].S)
	}
	return out
}
