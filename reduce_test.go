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

// Scenario 1 from the end-to-end examples: p | (q & r) under order [p,q,r]
// reduces to exactly 5 reachable nodes, is satisfiable and not valid.
func TestReduceScenario1(t *testing.T) {
	order, err := robdd.NewVarOrder([]robdd.Variable{"p", "q", "r"})
	require.NoError(t, err)
	f := formula.Or(formula.Var("p"), formula.And(formula.Var("q"), formula.Var("r")))
	bdd, err := robdd.Build(f, order)
	require.NoError(t, err)

	_, err = robdd.Reduce(bdd)
	require.NoError(t, err)

	require.Equal(t, 5, robdd.CountNodes(bdd))
	require.True(t, robdd.IsSatisfiable(bdd))
	require.False(t, robdd.IsValid(bdd))
}

func TestReduceIsNoopOnAlreadyReduced(t *testing.T) {
	order, err := robdd.NewVarOrder([]robdd.Variable{"p", "q"})
	require.NoError(t, err)
	f := formula.And(formula.Var("p"), formula.Var("q"))
	bdd, err := robdd.Build(f, order)
	require.NoError(t, err)

	_, err = robdd.Reduce(bdd)
	require.NoError(t, err)

	stats, err := robdd.Reduce(bdd)
	require.NoError(t, err)
	require.Equal(t, 0, stats.NodesRemoved)
	require.Equal(t, 0, stats.NodesMerged)
}

func TestReducePreservesMeaning(t *testing.T) {
	order, err := robdd.NewVarOrder([]robdd.Variable{"p", "q", "r"})
	require.NoError(t, err)
	f := formula.Iff(formula.Implies(formula.Var("p"), formula.Var("q")), formula.Or(formula.Not(formula.Var("p")), formula.Var("r")))
	bdd, err := robdd.Build(f, order)
	require.NoError(t, err)

	for _, p := range []bool{false, true} {
		for _, q := range []bool{false, true} {
			for _, r := range []bool{false, true} {
				i := formula.MapInterpretation{"p": p, "q": q, "r": r}
				before, err := robdd.Evaluate(bdd, i)
				require.NoError(t, err)

				_, err = robdd.Reduce(bdd)
				require.NoError(t, err)

				after, err := robdd.Evaluate(bdd, i)
				require.NoError(t, err)
				require.Equal(t, before, after)
			}
		}
	}
}

func TestReduceOneVariable(t *testing.T) {
	order, err := robdd.NewVarOrder([]robdd.Variable{"v"})
	require.NoError(t, err)
	f := formula.Var("v")
	bdd, err := robdd.Build(f, order)
	require.NoError(t, err)

	_, err = robdd.Reduce(bdd)
	require.NoError(t, err)
	require.Equal(t, 3, robdd.CountNodes(bdd))
}

func TestReduceTautology(t *testing.T) {
	order, err := robdd.NewVarOrder([]robdd.Variable{"v"})
	require.NoError(t, err)
	f := formula.Or(formula.Var("v"), formula.Not(formula.Var("v")))
	bdd, err := robdd.Build(f, order)
	require.NoError(t, err)

	_, err = robdd.Reduce(bdd)
	require.NoError(t, err)
	// A tautology's reduced root is exactly the True terminal: one
	// reachable node, not three.
	require.Equal(t, 1, robdd.CountNodes(bdd))
	require.True(t, robdd.IsValid(bdd))
}

// Variable-order sensitivity (scenario 5): (x0 & y0) | (x1 & y1) reduces
// smaller under an interleaved order than under a grouped one.
func TestReduceOrderSensitivity(t *testing.T) {
	f := formula.Or(
		formula.And(formula.Var("x0"), formula.Var("y0")),
		formula.And(formula.Var("x1"), formula.Var("y1")),
	)

	interleaved, err := robdd.NewVarOrder([]robdd.Variable{"x0", "y0", "x1", "y1"})
	require.NoError(t, err)
	grouped, err := robdd.NewVarOrder([]robdd.Variable{"x0", "x1", "y0", "y1"})
	require.NoError(t, err)

	bddInterleaved, err := robdd.Build(f, interleaved)
	require.NoError(t, err)
	_, err = robdd.Reduce(bddInterleaved)
	require.NoError(t, err)

	bddGrouped, err := robdd.Build(f, grouped)
	require.NoError(t, err)
	_, err = robdd.Reduce(bddGrouped)
	require.NoError(t, err)

	require.LessOrEqual(t, robdd.CountNodes(bddInterleaved), 7)
	require.Greater(t, robdd.CountNodes(bddGrouped), robdd.CountNodes(bddInterleaved))
}
