// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package formula_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-robdd/robdd/formula"
)

func TestEvalConnectives(t *testing.T) {
	p := formula.Var("p")
	q := formula.Var("q")

	tests := []struct {
		name     string
		f        formula.Formula
		i        formula.MapInterpretation
		expected bool
	}{
		{"var true", p, formula.MapInterpretation{"p": true}, true},
		{"var false", p, formula.MapInterpretation{"p": false}, false},
		{"const true", formula.Const(true), formula.MapInterpretation{}, true},
		{"not", formula.Not(p), formula.MapInterpretation{"p": false}, true},
		{"and", formula.And(p, q), formula.MapInterpretation{"p": true, "q": true}, true},
		{"and short", formula.And(p, q), formula.MapInterpretation{"p": true, "q": false}, false},
		{"or", formula.Or(p, q), formula.MapInterpretation{"p": false, "q": true}, true},
		{"implies vacuous", formula.Implies(p, q), formula.MapInterpretation{"p": false, "q": false}, true},
		{"implies false", formula.Implies(p, q), formula.MapInterpretation{"p": true, "q": false}, false},
		{"iff equal", formula.Iff(p, q), formula.MapInterpretation{"p": true, "q": true}, true},
		{"iff unequal", formula.Iff(p, q), formula.MapInterpretation{"p": true, "q": false}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formula.Eval(tt.f, tt.i)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestEvalUndefinedVariable(t *testing.T) {
	_, err := formula.Eval(formula.Var("p"), formula.MapInterpretation{})
	require.Error(t, err)
}

func TestFreeVarsOrderAndDedup(t *testing.T) {
	f := formula.Or(formula.And(formula.Var("p"), formula.Var("q")), formula.Var("p"))
	require.Equal(t, []formula.Variable{"p", "q"}, formula.FreeVars(f))
}

func TestFreeVarsIgnoresConstants(t *testing.T) {
	f := formula.And(formula.Const(true), formula.Var("x"))
	require.Equal(t, []formula.Variable{"x"}, formula.FreeVars(f))
}

func TestValidateRejectsNilSubFormula(t *testing.T) {
	err := formula.Validate(formula.Not(nil))
	require.Error(t, err)
}

func TestValidateAcceptsWellFormedTree(t *testing.T) {
	f := formula.Iff(formula.Implies(formula.Var("p"), formula.Var("q")), formula.Const(false))
	require.NoError(t, formula.Validate(f))
}

func TestString(t *testing.T) {
	f := formula.Implies(formula.Var("p"), formula.Not(formula.Var("q")))
	require.Equal(t, "(p -> !q)", f.String())
}
