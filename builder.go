// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "github.com/go-robdd/robdd/formula"

// assignmentInterp adapts a positional bit slice, indexed by a VarOrder, to
// the formula.Interpretation interface the evaluator consults. It avoids
// allocating a fresh map at every leaf of the Builder's exponential
// recursion.
type assignmentInterp struct {
	order *VarOrder
	bits  []bool
}

func (a *assignmentInterp) Value(v Variable) (bool, bool) {
	i, ok := a.order.Index(v)
	if !ok {
		return false, false
	}
	return a.bits[i], true
}

// Build turns a formula into a BDD by full Shannon decomposition over order,
// consulting order at each level and calling the store's redundancy-checking
// constructor at every step (see Store.makeRaw). The result satisfies
// invariants (1) terminals-unique and (3) non-redundant by construction, but
// may still violate (4) uniqueness: Reduce restores it.
//
// If order is omitted, the default is f's free variables in first-occurrence
// (source) order. Every free variable of f must appear in order, or Build
// reports UnknownVariable.
//
// All calls given the same *VarOrder build into the one Store attached to
// that order, so their results can be combined by Apply and compared by
// Equivalent. A call that uses the default order gets a store of its own.
func Build(f formula.Formula, order ...*VarOrder) (*BDD, error) {
	if err := formula.Validate(f); err != nil {
		return nil, newError(MalformedFormula, "%s", err)
	}
	var vo *VarOrder
	if len(order) > 0 && order[0] != nil {
		vo = order[0]
	} else {
		var err error
		vo, err = NewVarOrder(formula.FreeVars(f))
		if err != nil {
			return nil, err
		}
	}
	for _, v := range formula.FreeVars(f) {
		if _, ok := vo.Index(v); !ok {
			return nil, newError(UnknownVariable, "variable %q not present in variable order", v)
		}
	}
	if vo.store == nil {
		vo.store = NewStore(vo)
	}
	store := vo.store
	bits := make([]bool, vo.Len())
	root, err := buildRec(store, f, vo, bits, 0)
	if err != nil {
		return nil, err
	}
	return newBDD(store, root), nil
}

func buildRec(store *Store, f formula.Formula, order *VarOrder, bits []bool, i int) (Ref, error) {
	if i == order.Len() {
		val, err := formula.Eval(f, &assignmentInterp{order: order, bits: bits})
		if err != nil {
			return 0, newError(UndefinedVariable, "%s", err)
		}
		return store.terminal(val), nil
	}
	v := order.At(i)
	bits[i] = false
	lo, err := buildRec(store, f, order, bits, i+1)
	if err != nil {
		return 0, err
	}
	bits[i] = true
	hi, err := buildRec(store, f, order, bits, i+1)
	if err != nil {
		return 0, err
	}
	return store.makeRaw(v, lo, hi), nil
}
