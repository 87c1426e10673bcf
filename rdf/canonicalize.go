package rdf

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// Canonicalize returns a copy of in with all blank nodes relabeled
// "c0", "c1", ... in an order derived from iterated hashing of each
// node's neighborhood. Isomorphic graphs converge on the same labels
// independent of the labels they arrived with; remaining ties between
// structurally indistinguishable nodes fall back to first-appearance
// order, keeping the result deterministic for a given document.
func Canonicalize(in *Input) *Input {
	labels, firstSeen := blankNodeLabels(in.Graph)
	if len(labels) == 0 {
		return in
	}

	hashes := make(map[string]string, len(labels))
	for _, l := range labels {
		hashes[l] = ""
	}
	// Each round folds the neighbours' previous hashes in, so after at
	// most len(labels) rounds every node has seen the whole component.
	for round := 0; round < len(labels); round++ {
		next := make(map[string]string, len(labels))
		for _, l := range labels {
			next[l] = hashNeighborhood(in.Graph, l, hashes)
		}
		if sameHashes(hashes, next) {
			break
		}
		hashes = next
	}

	ordered := append([]string(nil), labels...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if hashes[ordered[i]] != hashes[ordered[j]] {
			return hashes[ordered[i]] < hashes[ordered[j]]
		}
		return firstSeen[ordered[i]] < firstSeen[ordered[j]]
	})
	mapping := make(map[string]string, len(ordered))
	for i, l := range ordered {
		mapping[l] = "c" + strconv.Itoa(i)
	}
	return relabel(in, mapping)
}

func blankNodeLabels(g *Graph) ([]string, map[string]int) {
	var labels []string
	firstSeen := make(map[string]int)
	note := func(t Term) {
		bn, ok := t.(BlankNode)
		if !ok {
			return
		}
		if _, seen := firstSeen[bn.ID]; !seen {
			firstSeen[bn.ID] = len(labels)
			labels = append(labels, bn.ID)
		}
	}
	for _, t := range g.Triples() {
		note(t.S)
		note(t.O)
	}
	return labels, firstSeen
}

// hashNeighborhood hashes the sorted encodings of every triple the node
// takes part in, with blank nodes replaced by their prior round hash.
func hashNeighborhood(g *Graph, label string, prior map[string]string) string {
	var parts []string
	for _, t := range g.Triples() {
		if !mentionsBlank(t, label) {
			continue
		}
		parts = append(parts,
			encodeForHash(t.S, label, prior)+" "+
				t.P.Value+" "+
				encodeForHash(t.O, label, prior))
	}
	sort.Strings(parts)
	sum := sha256.Sum256([]byte(strings.Join(parts, "\n")))
	return hex.EncodeToString(sum[:])
}

func mentionsBlank(t Triple, label string) bool {
	return termMentionsBlank(t.S, label) || termMentionsBlank(t.O, label)
}

func termMentionsBlank(t Term, label string) bool {
	switch x := t.(type) {
	case BlankNode:
		return x.ID == label
	case TripleTerm:
		return termMentionsBlank(x.S, label) || termMentionsBlank(x.O, label)
	}
	return false
}

func encodeForHash(t Term, self string, prior map[string]string) string {
	switch x := t.(type) {
	case IRI:
		return "I<" + x.Value + ">"
	case Literal:
		return "L" + x.String()
	case BlankNode:
		if x.ID == self {
			return "Bself"
		}
		return "B" + prior[x.ID]
	case TripleTerm:
		return "T(" + encodeForHash(x.S, self, prior) + " " + x.P.Value + " " + encodeForHash(x.O, self, prior) + ")"
	}
	return "?"
}

func sameHashes(a, b map[string]string) bool {
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// relabel rebuilds the input with every blank node renamed through
// mapping, preserving graph and appearance orders.
func relabel(in *Input, mapping map[string]string) *Input {
	out := &Input{
		Graph:            NewGraph(),
		Base:             in.Base,
		BaseDeclared:     in.BaseDeclared,
		Prefixes:         in.Prefixes,
		InversePrefixes:  in.InversePrefixes,
		ContainsComments: in.ContainsComments,
	}
	for _, t := range in.Graph.Triples() {
		out.Graph.Insert(Triple{
			S: renameTerm(t.S, mapping),
			P: t.P,
			O: renameTerm(t.O, mapping),
		})
	}
	for _, s := range in.SubjectOrder {
		out.SubjectOrder = append(out.SubjectOrder, renameTerm(s, mapping))
	}
	for _, l := range in.BlankObjectOrder {
		if renamed, ok := mapping[l]; ok {
			out.BlankObjectOrder = append(out.BlankObjectOrder, renamed)
		} else {
			out.BlankObjectOrder = append(out.BlankObjectOrder, l)
		}
	}
	return out
}

func renameTerm(t Term, mapping map[string]string) Term {
	switch x := t.(type) {
	case BlankNode:
		if renamed, ok := mapping[x.ID]; ok {
			return BlankNode{ID: renamed}
		}
		return x
	case TripleTerm:
		return TripleTerm{
			S: renameTerm(x.S, mapping),
			P: x.P,
			O: renameTerm(x.O, mapping),
		}
	}
	return t
}
