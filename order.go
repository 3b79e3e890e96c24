// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"golang.org/x/exp/slices"

	"github.com/go-robdd/robdd/formula"
)

// Variable is a value drawn from an opaque identifier space; it is the same
// type formula uses to name a propositional variable.
type Variable = formula.Variable

// VarOrder is a total order on variables, consulted by Build, Reduce and
// Apply. Its ranking is immutable once constructed; it also holds the Store
// that Build shares among all BDDs built against it. Every BDD records the VarOrder it
// was built against, and operations mixing BDDs from differing orders report
// an OrderMismatch error.
type VarOrder struct {
	vars  []Variable
	index map[Variable]int
	store *Store // node store shared by every Build against this order
}

// NewVarOrder builds a VarOrder ranking vars in the given sequence: vars[0]
// is earliest, vars[len(vars)-1] is latest. Duplicate entries are an error.
func NewVarOrder(vars []Variable) (*VarOrder, error) {
	index := make(map[Variable]int, len(vars))
	for i, v := range vars {
		if _, ok := index[v]; ok {
			return nil, newError(MalformedFormula, "duplicate variable %q in variable order", v)
		}
		index[v] = i
	}
	cp := slices.Clone(vars)
	return &VarOrder{vars: cp, index: index}, nil
}

// Len returns the number of variables in the order.
func (o *VarOrder) Len() int {
	return len(o.vars)
}

// At returns the variable ranked at position i.
func (o *VarOrder) At(i int) Variable {
	return o.vars[i]
}

// Index returns the position of v in the order, and false if v is absent.
func (o *VarOrder) Index(v Variable) (int, bool) {
	i, ok := o.index[v]
	return i, ok
}

// Earliest returns whichever of v1, v2 has the smaller index. Both variables
// must be present in the order.
func (o *VarOrder) Earliest(v1, v2 Variable) Variable {
	i1 := o.index[v1]
	i2 := o.index[v2]
	if i1 <= i2 {
		return v1
	}
	return v2
}

// Equal reports whether o and other rank the same variables in the same
// sequence.
func (o *VarOrder) Equal(other *VarOrder) bool {
	if o == other {
		return true
	}
	if o == nil || other == nil {
		return false
	}
	return slices.Equal(o.vars, other.vars)
}
