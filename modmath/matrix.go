// SPDX-License-Identifier: MIT
// Package modmath: dense square integer matrix with exact modular inverse.
// All operations allocate fresh results and never mutate their receiver, so
// a Matrix can be shared freely between concurrent callers.

package modmath

import "fmt"

// Matrix is a dense n×n integer matrix stored row-major. The zero value is
// not usable; construct via FromRows.
type Matrix struct {
	n     int
	cells []int
}

// FromRows builds a Matrix from a square slice of rows. The input is copied;
// later mutation of rows does not affect the Matrix.
//
// Errors:
//   - ErrBadShape — no rows, or any row whose length differs from the row count.
func FromRows(rows [][]int) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadShape)
	}
	cells := make([]int, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadShape, i, len(row), n)
		}
		cells = append(cells, row...)
	}

	return &Matrix{n: n, cells: cells}, nil
}

// Size returns the dimension n of the n×n matrix.
func (m *Matrix) Size() int { return m.n }

// At returns the element at row i, column j. Indices must be in [0, n);
// out-of-range access is a programmer error and panics like any slice index.
func (m *Matrix) At(i, j int) int { return m.cells[i*m.n+j] }

// Rows returns a fresh row-major copy of the matrix contents.
func (m *Matrix) Rows() [][]int {
	rows := make([][]int, m.n)
	for i := 0; i < m.n; i++ {
		rows[i] = make([]int, m.n)
		copy(rows[i], m.cells[i*m.n:(i+1)*m.n])
	}

	return rows
}

// Determinant computes the exact integer determinant by cofactor expansion
// along the first row.
//
// Implementation:
//   - Stage 1: closed forms for n=1 and n=2.
//   - Stage 2: recursive expansion det = Σ_j (-1)^j · a[0][j] · det(minor(0, j)).
//
// Determinism:
//   - Fixed left-to-right expansion order; integer arithmetic only.
//
// Complexity:
//   - Time O(n!), Space O(n²) across the recursion. Intended for the small
//     key matrices of classical ciphers.
func (m *Matrix) Determinant() int {
	return det(m.cells, m.n)
}

// Adjugate returns the transpose of the cofactor matrix, in exact integers.
// Together with the determinant it yields the modular inverse without ever
// leaving ℤ. The 1×1 adjugate is [[1]] by convention.
//
// Complexity: O(n · n!) — one cofactor per cell.
func (m *Matrix) Adjugate() *Matrix {
	n := m.n
	adj := &Matrix{n: n, cells: make([]int, n*n)}
	if n == 1 {
		adj.cells[0] = 1

		return adj
	}

	minor := make([]int, (n-1)*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			fillMinor(m.cells, n, i, j, minor)
			c := det(minor, n-1)
			if (i+j)%2 == 1 {
				c = -c
			}
			// Transposed placement: cofactor of (i,j) lands at (j,i).
			adj.cells[j*n+i] = c
		}
	}

	return adj
}

// InverseMod returns the matrix inverse modulo mod, computed as
// det⁻¹ · adjugate, all in exact integer arithmetic.
//
// Inputs:
//   - mod: the ring modulus, must be ≥ 2 (26 for the Latin alphabet).
//
// Returns:
//   - *Matrix: fresh matrix with entries in [0, mod).
//   - error: ErrBadModulus when mod < 2; ErrNotInvertible when
//     gcd(det mod mod, mod) ≠ 1 (no scalar inverse for the determinant).
//
// Determinism:
//   - Pure function of (receiver, mod); fixed traversal order.
//
// Complexity:
//   - Time O(n · n!), dominated by the adjugate.
//
// AI-Hints:
//   - Gate key acceptance with this call: a matrix key is valid exactly
//     when InverseMod(26) succeeds, so validate by invoking it once and
//     caching the result next to the key.
func (m *Matrix) InverseMod(mod int) (*Matrix, error) {
	if mod < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadModulus, mod)
	}
	d := Mod(m.Determinant(), mod)
	dInv, err := ModInverse(d, mod)
	if err != nil {
		return nil, fmt.Errorf("%w: determinant ≡ %d (mod %d)", ErrNotInvertible, d, mod)
	}

	adj := m.Adjugate()
	inv := &Matrix{n: m.n, cells: make([]int, len(adj.cells))}
	for i, c := range adj.cells {
		inv.cells[i] = Mod(dInv*Mod(c, mod), mod)
	}

	return inv, nil
}

// MulVecMod multiplies the matrix by a column vector and reduces each
// component modulo mod: out = (m · v) mod mod. This is the per-block step
// of the Hill cipher.
//
// Errors:
//   - ErrDimensionMismatch — len(v) ≠ n.
//   - ErrBadModulus — mod < 2.
//
// Complexity: O(n²).
func (m *Matrix) MulVecMod(v []int, mod int) ([]int, error) {
	if len(v) != m.n {
		return nil, fmt.Errorf("%w: vector length %d, matrix size %d", ErrDimensionMismatch, len(v), m.n)
	}
	if mod < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadModulus, mod)
	}

	out := make([]int, m.n)
	for i := 0; i < m.n; i++ {
		sum := 0
		for k := 0; k < m.n; k++ {
			sum += m.cells[i*m.n+k] * v[k]
		}
		out[i] = Mod(sum, mod)
	}

	return out, nil
}

// det is the shared cofactor-expansion kernel over a row-major cell slice.
func det(cells []int, n int) int {
	if n == 1 {
		return cells[0]
	}
	if n == 2 {
		return cells[0]*cells[3] - cells[1]*cells[2]
	}

	var (
		total = 0
		sign  = 1
		minor = make([]int, (n-1)*(n-1))
	)
	for col := 0; col < n; col++ {
		fillMinor(cells, n, 0, col, minor)
		total += sign * cells[col] * det(minor, n-1)
		sign = -sign
	}

	return total
}

// fillMinor writes the minor of (row, col) into dst, row-major.
// dst must have length (n-1)².
func fillMinor(cells []int, n, row, col int, dst []int) {
	idx := 0
	for i := 0; i < n; i++ {
		if i == row {
			continue
		}
		for j := 0; j < n; j++ {
			if j == col {
				continue
			}
			dst[idx] = cells[i*n+j]
			idx++
		}
	}
}
