// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"math/big"

	"github.com/go-robdd/robdd/formula"
)

// Evaluate descends from bdd's root under interpretation i, taking the high
// child when i assigns the node's variable true and the low child
// otherwise, and returns the terminal's value. It works whether or not bdd
// has been reduced.
func Evaluate(bdd *BDD, i formula.Interpretation) (bool, error) {
	store := bdd.store
	n := bdd.root
	for !store.isTerminal(n) {
		node := store.nodes[n]
		val, ok := i.Value(node.v)
		if !ok {
			return false, newError(UndefinedVariable, "interpretation has no value for variable %q", node.v)
		}
		if val {
			n = node.high
		} else {
			n = node.low
		}
	}
	return store.terminalValue(n), nil
}

// reaches reports whether target is reachable from n by following low/high
// edges. It is the shared DFS behind IsSatisfiable and IsValid: both work
// identically whether bdd is reduced or not, since reachability of a
// terminal does not depend on canonicity.
func reaches(store *Store, n, target Ref, seen map[Ref]bool) bool {
	if n == target {
		return true
	}
	if store.isTerminal(n) {
		return false
	}
	if seen[n] {
		return false
	}
	seen[n] = true
	node := store.nodes[n]
	return reaches(store, node.low, target, seen) || reaches(store, node.high, target, seen)
}

// IsSatisfiable reports whether bdd's function is true under some
// interpretation: equivalently, whether the True terminal is reachable from
// the root.
func IsSatisfiable(bdd *BDD) bool {
	return reaches(bdd.store, bdd.root, TrueRef, make(map[Ref]bool))
}

// IsValid reports whether bdd's function is true under every interpretation:
// equivalently, whether the False terminal is unreachable from the root.
func IsValid(bdd *BDD) bool {
	return !reaches(bdd.store, bdd.root, FalseRef, make(map[Ref]bool))
}

// Equivalent reports whether a and b encode the same Boolean function. a and
// b must share a store and variable order (see Design Notes: equivalence
// across stores requires rebuilding into a common one first, via Build
// against one shared VarOrder, rather than an implicit conversion). When both are
// canonical, root identity already decides it; the general case falls back
// to Apply(IFF) followed by IsValid, which is correct regardless of whether
// either operand has been reduced.
func Equivalent(a, b *BDD) (bool, error) {
	if err := checkOperands(a, b); err != nil {
		return false, err
	}
	if a.root == b.root {
		return true, nil
	}
	iff, err := Apply(OPbiimp, a, b)
	if err != nil {
		return false, err
	}
	return IsValid(iff), nil
}

// CountNodes returns the size of the subgraph reachable from bdd's root,
// counting a terminal if it is reached.
func CountNodes(bdd *BDD) int {
	seen := make(map[Ref]bool)
	var count func(n Ref)
	count = func(n Ref) {
		if seen[n] {
			return
		}
		seen[n] = true
		if bdd.store.isTerminal(n) {
			return
		}
		node := bdd.store.nodes[n]
		count(node.low)
		count(node.high)
	}
	count(bdd.root)
	return len(seen)
}

// Satcount computes the number of satisfying variable assignments for bdd's
// function, using arbitrary-precision arithmetic to avoid overflow on
// formulas with many variables. Don't-care variables below a node contribute
// the usual 2^gap multiplier.
func Satcount(bdd *BDD) *big.Int {
	store := bdd.store
	res := big.NewInt(0)
	res.SetBit(res, store.level(bdd.root), 1)
	memo := make(map[Ref]*big.Int)
	return res.Mul(res, satcountRec(store, bdd.root, memo))
}

func satcountRec(store *Store, n Ref, memo map[Ref]*big.Int) *big.Int {
	if store.isTerminal(n) {
		return big.NewInt(int64(boolToInt(store.terminalValue(n))))
	}
	if res, ok := memo[n]; ok {
		return res
	}
	node := store.nodes[n]
	lvl := store.level(n)
	res := big.NewInt(0)

	lowGap := big.NewInt(0)
	lowGap.SetBit(lowGap, store.level(node.low)-lvl-1, 1)
	res.Add(res, lowGap.Mul(lowGap, satcountRec(store, node.low, memo)))

	highGap := big.NewInt(0)
	highGap.SetBit(highGap, store.level(node.high)-lvl-1, 1)
	res.Add(res, highGap.Mul(highGap, satcountRec(store, node.high, memo)))

	memo[n] = res
	return res
}

// AllSat iterates through all satisfying variable assignments for bdd and
// calls f on each of them, passing a slice indexed by variable-order
// position where each entry is 1 if the variable is true, 0 if false, and -1
// if it is a don't-care for that assignment (a path on which neither value
// changes satisfiability). Iteration stops, and AllSat returns that error,
// the first time f returns a non-nil error.
func AllSat(bdd *BDD, f func(assignment []int) error) error {
	store := bdd.store
	profile := make([]int, store.order.Len())
	for i := range profile {
		profile[i] = -1
	}
	return allsatRec(store, bdd.root, profile, f)
}

func allsatRec(store *Store, n Ref, profile []int, f func([]int) error) error {
	if n == TrueRef {
		return f(profile)
	}
	if n == FalseRef {
		return nil
	}
	node := store.nodes[n]
	lvl := store.level(n)
	if node.low != FalseRef {
		profile[lvl] = 0
		for v := store.level(node.low) - 1; v > lvl; v-- {
			profile[v] = -1
		}
		if err := allsatRec(store, node.low, profile, f); err != nil {
			return err
		}
	}
	if node.high != FalseRef {
		profile[lvl] = 1
		for v := store.level(node.high) - 1; v > lvl; v-- {
			profile[v] = -1
		}
		if err := allsatRec(store, node.high, profile, f); err != nil {
			return err
		}
	}
	profile[lvl] = -1
	return nil
}

// AllNodes calls f once for every node reachable from bdd's root (or, if
// roots is non-empty, from every BDD in roots), passing each node's handle,
// level, and low/high children. The two terminals always have handle
// FalseRef/TrueRef. Visit order is unspecified. Iteration stops, and
// AllNodes returns that error, the first time f returns a non-nil error.
func AllNodes(f func(ref Ref, level int, low, high Ref) error, roots ...*BDD) error {
	if len(roots) == 0 {
		return nil
	}
	store := roots[0].store
	seen := make(map[Ref]bool)
	var visit func(n Ref) error
	visit = func(n Ref) error {
		if seen[n] {
			return nil
		}
		seen[n] = true
		if store.isTerminal(n) {
			return f(n, store.level(n), FalseRef, FalseRef)
		}
		node := store.nodes[n]
		if err := f(n, store.level(n), node.low, node.high); err != nil {
			return err
		}
		if err := visit(node.low); err != nil {
			return err
		}
		return visit(node.high)
	}
	for _, r := range roots {
		if err := visit(r.root); err != nil {
			return err
		}
	}
	return nil
}
