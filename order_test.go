// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-robdd/robdd"
)

func TestVarOrderIndexAndEarliest(t *testing.T) {
	order, err := robdd.NewVarOrder([]robdd.Variable{"p", "q", "r"})
	require.NoError(t, err)
	require.Equal(t, 3, order.Len())

	idx, ok := order.Index("q")
	require.True(t, ok)
	require.Equal(t, 1, idx)

	_, ok = order.Index("z")
	require.False(t, ok)

	require.Equal(t, robdd.Variable("p"), order.Earliest("p", "r"))
	require.Equal(t, robdd.Variable("q"), order.Earliest("r", "q"))
}

func TestVarOrderRejectsDuplicates(t *testing.T) {
	_, err := robdd.NewVarOrder([]robdd.Variable{"p", "q", "p"})
	require.Error(t, err)
}

func TestVarOrderEqual(t *testing.T) {
	a, err := robdd.NewVarOrder([]robdd.Variable{"p", "q"})
	require.NoError(t, err)
	b, err := robdd.NewVarOrder([]robdd.Variable{"p", "q"})
	require.NoError(t, err)
	c, err := robdd.NewVarOrder([]robdd.Variable{"q", "p"})
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
