// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package formula

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Interpretation assigns a Boolean value to variables. Eval and the Builder
// consult it only for the variables a formula actually mentions.
type Interpretation interface {
	// Value returns the assignment for v, and false if v is unassigned.
	Value(v Variable) (bool, bool)
}

// MapInterpretation is the straightforward Interpretation backed by a Go
// map, convenient for tests and small formulas.
type MapInterpretation map[Variable]bool

// Value implements Interpretation.
func (m MapInterpretation) Value(v Variable) (bool, bool) {
	b, ok := m[v]
	return b, ok
}

// Eval evaluates f under interpretation i, following the conventional
// reading of the connectives: Implies(a, b) = !a | b, Iff is equality of
// booleans. It returns an error if f mentions a variable i has no value for.
func Eval(f Formula, i Interpretation) (bool, error) {
	switch n := f.(type) {
	case varFormula:
		v, ok := i.Value(n.name)
		if !ok {
			return false, fmt.Errorf("formula: no value for variable %q", n.name)
		}
		return v, nil
	case constFormula:
		return n.value, nil
	case notFormula:
		v, err := Eval(n.x, i)
		if err != nil {
			return false, err
		}
		return !v, nil
	case andFormula:
		l, err := Eval(n.left, i)
		if err != nil {
			return false, err
		}
		r, err := Eval(n.right, i)
		if err != nil {
			return false, err
		}
		return l && r, nil
	case orFormula:
		l, err := Eval(n.left, i)
		if err != nil {
			return false, err
		}
		r, err := Eval(n.right, i)
		if err != nil {
			return false, err
		}
		return l || r, nil
	case impliesFormula:
		l, err := Eval(n.left, i)
		if err != nil {
			return false, err
		}
		r, err := Eval(n.right, i)
		if err != nil {
			return false, err
		}
		return !l || r, nil
	case iffFormula:
		l, err := Eval(n.left, i)
		if err != nil {
			return false, err
		}
		r, err := Eval(n.right, i)
		if err != nil {
			return false, err
		}
		return l == r, nil
	default:
		return false, fmt.Errorf("formula: unrecognized node type %T", f)
	}
}

// FreeVars returns the free variables of f, deduplicated, in first-occurrence
// (source) order. This is the default variable order the Builder uses when a
// caller supplies none.
func FreeVars(f Formula) []Variable {
	var out []Variable
	var walk func(Formula)
	walk = func(f Formula) {
		switch n := f.(type) {
		case varFormula:
			if !slices.Contains(out, n.name) {
				out = append(out, n.name)
			}
		case constFormula:
		case notFormula:
			walk(n.x)
		case andFormula:
			walk(n.left)
			walk(n.right)
		case orFormula:
			walk(n.left)
			walk(n.right)
		case impliesFormula:
			walk(n.left)
			walk(n.right)
		case iffFormula:
			walk(n.left)
			walk(n.right)
		}
	}
	walk(f)
	return out
}
