// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-robdd/robdd"
	"github.com/go-robdd/robdd/formula"
)

// Scenario 2: (p&q) | (p&r) is equivalent to p & (q|r).
func TestEquivalentScenario2(t *testing.T) {
	order, err := robdd.NewVarOrder([]robdd.Variable{"p", "q", "r"})
	require.NoError(t, err)

	left := buildReduced(t, order, formula.Or(
		formula.And(formula.Var("p"), formula.Var("q")),
		formula.And(formula.Var("p"), formula.Var("r")),
	))
	right := buildReduced(t, order, formula.And(
		formula.Var("p"),
		formula.Or(formula.Var("q"), formula.Var("r")),
	))

	eq, err := robdd.Equivalent(left, right)
	require.NoError(t, err)
	require.True(t, eq)
}

// Scenario 3: (p -> q) <-> (!p | q) is a tautology, equivalent to reduce(build(True)).
func TestEquivalentScenario3(t *testing.T) {
	order, err := robdd.NewVarOrder([]robdd.Variable{"p", "q"})
	require.NoError(t, err)

	left := buildReduced(t, order, formula.Iff(
		formula.Implies(formula.Var("p"), formula.Var("q")),
		formula.Or(formula.Not(formula.Var("p")), formula.Var("q")),
	))
	right := buildReduced(t, order, formula.Const(true))

	eq, err := robdd.Equivalent(left, right)
	require.NoError(t, err)
	require.True(t, eq)
	require.True(t, robdd.IsValid(left))
}

// Scenario 4: evaluating p | (q & r) under three interpretations.
func TestEvaluateScenario4(t *testing.T) {
	order, err := robdd.NewVarOrder([]robdd.Variable{"p", "q", "r"})
	require.NoError(t, err)
	f := formula.Or(formula.Var("p"), formula.And(formula.Var("q"), formula.Var("r")))
	bdd, err := robdd.Build(f, order)
	require.NoError(t, err)

	cases := []struct {
		i        formula.MapInterpretation
		expected bool
	}{
		{formula.MapInterpretation{"p": false, "q": true, "r": true}, true},
		{formula.MapInterpretation{"p": true, "q": false, "r": false}, true},
		{formula.MapInterpretation{"p": false, "q": true, "r": false}, false},
	}
	for _, tt := range cases {
		got, err := robdd.Evaluate(bdd, tt.i)
		require.NoError(t, err)
		require.Equal(t, tt.expected, got)
	}
}

func TestEvaluateUndefinedVariable(t *testing.T) {
	order, err := robdd.NewVarOrder([]robdd.Variable{"p"})
	require.NoError(t, err)
	bdd := buildReduced(t, order, formula.Var("p"))

	_, err = robdd.Evaluate(bdd, formula.MapInterpretation{})
	require.Error(t, err)
	var rerr *robdd.Error
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, robdd.UndefinedVariable, rerr.Kind)
}

func TestEquivalentOrderMismatch(t *testing.T) {
	orderA, err := robdd.NewVarOrder([]robdd.Variable{"p", "q"})
	require.NoError(t, err)
	orderB, err := robdd.NewVarOrder([]robdd.Variable{"q", "p"})
	require.NoError(t, err)
	a := buildReduced(t, orderA, formula.Var("p"))
	b := buildReduced(t, orderB, formula.Var("q"))

	_, err = robdd.Equivalent(a, b)
	require.Error(t, err)
	var rerr *robdd.Error
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, robdd.OrderMismatch, rerr.Kind)
}

func TestConstantOnlyFormulasAreSingleTerminal(t *testing.T) {
	bddTrue, err := robdd.Build(formula.Const(true))
	require.NoError(t, err)
	require.Equal(t, robdd.TrueRef, bddTrue.Root())
	require.Equal(t, 1, robdd.CountNodes(bddTrue))

	bddFalse, err := robdd.Build(formula.Const(false))
	require.NoError(t, err)
	require.Equal(t, robdd.FalseRef, bddFalse.Root())
	require.Equal(t, 1, robdd.CountNodes(bddFalse))
}
