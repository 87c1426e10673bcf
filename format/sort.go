package format

import "sort"

// sortTree orders subjects, predicates and objects recursively. List
// elements are visited so nested structures inside them get sorted,
// but the elements themselves keep their source order.
func sortTree(tree *Tree, ctx *sortContext) {
	for _, entry := range tree.Entries {
		sortNode(entry.Subject, ctx)
		sortPredicates(entry.Predicates, ctx)
	}
	sort.SliceStable(tree.Entries, func(i, j int) bool {
		return ctx.compareSubjects(tree.Entries[i], tree.Entries[j]) < 0
	})
}

func sortPredicates(preds []*PredicateEntry, ctx *sortContext) {
	for _, p := range preds {
		for _, o := range p.Objects {
			sortNode(o, ctx)
		}
		sort.SliceStable(p.Objects, func(i, j int) bool {
			return ctx.compareNodes(p.Objects[i], p.Objects[j]) < 0
		})
	}
	sort.SliceStable(preds, func(i, j int) bool {
		return ctx.comparePredicates(preds[i].Predicate, preds[j].Predicate) < 0
	})
}

func sortNode(n Node, ctx *sortContext) {
	switch n := n.(type) {
	case *BlankInlineNode:
		sortPredicates(n.Predicates, ctx)
	case *CollectionNode:
		for _, el := range n.Elements {
			sortNode(el, ctx)
		}
	case *QuotedTripleNode:
		sortNode(n.Subject, ctx)
		sortNode(n.Object, ctx)
	}
}
