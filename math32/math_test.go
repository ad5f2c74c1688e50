// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapMax(t *testing.T) {
	tests := []struct {
		x, mx, cor float32
	}{
		{x: 2, mx: 1, cor: 0},
		{x: 2.5, mx: 2, cor: 0.5},
		{x: 10002.5, mx: 2, cor: 0.5},
		{x: -2.5, mx: 2, cor: 1.5},
		{x: -200.5, mx: 2, cor: 1.5},
		{x: 3.14, mx: 3.1, cor: 0.04},
	}
	for _, tt := range tests {
		got := WrapMax(tt.x, tt.mx)
		assert.InDelta(t, tt.cor, got, 1e-5)
	}
}
