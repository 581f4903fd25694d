// Copyright 2014 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rowmul multiplies 3×3 integer matrices with one goroutine per
// output row.
//
// # Overview
//
// Multiply fans out one row task per row of the result and waits for all of
// them before returning. Each task is given its row index and writes only that
// row, so the tasks never touch the same cell and no locking is needed:
//
//	c := rowmul.Multiply(rowmul.InputA, rowmul.InputB)
//	rowmul.Fprint(os.Stdout, c)
//
// The operands are passed by value. Every task reads the same private copy
// of them, and nothing writes to it while the tasks run.
package rowmul

import (
	"log/slog"
	"sync"

	"github.com/ScriptRock/rowmul/internal/matrix"
)

// Matrix is a 3×3 grid of signed integers, indexed [row][column].
type Matrix = matrix.Matrix

// Size is the number of rows, and therefore of row tasks, in a product.
const Size = matrix.Size

var (
	// InputA is the left operand of the program's fixed product.
	InputA = Matrix{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}

	// InputB is the right operand of the program's fixed product.
	InputB = Matrix{
		{7, 8, 9},
		{4, 5, 6},
		{1, 2, 3},
	}
)

// Inputs returns copies of InputA and InputB.
func Inputs() (Matrix, Matrix) {
	return InputA, InputB
}

// Identity returns the 3×3 identity matrix.
func Identity() Matrix { return *matrix.Identity() }

// Zero returns the 3×3 zero matrix.
func Zero() Matrix { return *matrix.Zero() }

// Multiply returns a×b. It starts one goroutine per row of the result and
// blocks until every one of them has finished.
func Multiply(a, b Matrix) Matrix {
	var (
		c  Matrix
		wg sync.WaitGroup
	)

	for i := 0; i < Size; i++ {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			slog.Debug("row task started", slog.Int("row", row))
			c[row] = a.Row(&b, row)
			slog.Debug("row task finished", slog.Int("row", row), slog.Any("values", c[row]))
		}(i)
	}

	wg.Wait()
	return c
}

// Sequential returns a×b computed on the calling goroutine. Multiply must
// always agree with it.
func Sequential(a, b Matrix) Matrix {
	return *a.Mul(&b)
}
