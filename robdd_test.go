// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd_test

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
