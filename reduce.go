// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// ReduceStats reports the work done by a Reduce pass: how many redundant
// nodes were collapsed and how many isomorphic subgraphs were merged into a
// shared representative.
type ReduceStats struct {
	NodesRemoved int
	NodesMerged  int
}

// Reduce transforms bdd in place into its canonical form: it restores
// invariant (4) (no two distinct internal nodes share a (v, low, high)
// triple) on top of the (1) and (3) the Builder already guarantees, without
// changing the Boolean function bdd computes. This is Algorithm 5.3: collect
// nodes by level, then walk levels deepest variable to shallowest, merging
// isomorphic siblings and collapsing redundant nodes, rebuilding through the
// store's hash-consing constructor so cross-level uniqueness holds too.
//
// Reducing an already-reduced BDD is a structural no-op: NodesRemoved and
// NodesMerged are both zero.
func Reduce(bdd *BDD) (ReduceStats, error) {
	store := bdd.store
	order := store.order

	levels := make([][]Ref, order.Len())
	reached := make(map[Ref]bool)
	var collect func(r Ref)
	collect = func(r Ref) {
		if reached[r] {
			return
		}
		reached[r] = true
		if store.isTerminal(r) {
			return
		}
		n := store.nodes[r]
		lvl := mustIndex(order, n.v)
		levels[lvl] = append(levels[lvl], r)
		collect(n.low)
		collect(n.high)
	}
	collect(bdd.root)

	label := make(map[Ref]Ref, len(reached))
	label[FalseRef] = FalseRef
	label[TrueRef] = TrueRef

	var stats ReduceStats
	for lvl := order.Len() - 1; lvl >= 0; lvl-- {
		for _, old := range levels[lvl] {
			n := store.nodes[old]
			lo := label[n.low]
			hi := label[n.high]
			if lo == hi {
				label[old] = lo
				stats.NodesRemoved++
				continue
			}
			if existing, ok := store.lookup(n.v, lo, hi); ok {
				label[old] = existing
				if existing != old {
					stats.NodesMerged++
				}
				continue
			}
			label[old] = store.make(n.v, lo, hi)
		}
	}

	bdd.root = label[bdd.root]
	return stats, nil
}
