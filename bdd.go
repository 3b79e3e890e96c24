// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// BDD is a handle on one rooted Boolean function: a root Ref, the Store it
// was built against, and (via the store) the variable order it was ordered
// under. Two BDDs sharing a store may be combined directly by Apply; BDDs
// from different stores must go through a common store first (see
// Equivalent).
type BDD struct {
	store *Store
	root  Ref
}

func newBDD(store *Store, root Ref) *BDD {
	return &BDD{store: store, root: root}
}

// Store returns the node store b was built against.
func (b *BDD) Store() *Store {
	return b.store
}

// Root returns b's root handle.
func (b *BDD) Root() Ref {
	return b.root
}

// Order returns the variable order b was built against.
func (b *BDD) Order() *VarOrder {
	return b.store.order
}

func sameStore(a, b *BDD) bool {
	return a.store == b.store
}

// And returns the conjunction of a sequence of BDDs sharing a store. n must
// be non-empty: there is no store to anchor an identity element against.
func And(n ...*BDD) (*BDD, error) {
	if len(n) == 0 {
		return nil, newError(MalformedFormula, "And requires at least one operand")
	}
	if len(n) == 1 {
		return n[0], nil
	}
	rest, err := And(n[1:]...)
	if err != nil {
		return nil, err
	}
	return Apply(OPand, n[0], rest)
}

// Or returns the disjunction of a sequence of BDDs sharing a store. n must
// be non-empty.
func Or(n ...*BDD) (*BDD, error) {
	if len(n) == 0 {
		return nil, newError(MalformedFormula, "Or requires at least one operand")
	}
	if len(n) == 1 {
		return n[0], nil
	}
	rest, err := Or(n[1:]...)
	if err != nil {
		return nil, err
	}
	return Apply(OPor, n[0], rest)
}
