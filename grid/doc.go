// SPDX-License-Identifier: MIT

// Package grid generates the coordinate orders behind every transposition
// cipher — Route's four read-out patterns, Rail Fence's zigzag and the
// Myszkowski keyword grouping — and turns them into exact permutations.
//
// 🚀 The one idea:
//
//	A transposition cipher never changes letters, it only reorders them.
//	Each variant is fully described by an ordered list of grid coordinates
//	(a pure function of the grid shape, independent of the text), and that
//	list compiles into an index permutation:
//	  • encrypt = Apply(perm, text)
//	  • decrypt = Apply(Invert(perm), ciphertext)
//	Because both directions share one generator, they can never disagree;
//	decryption is the exact inverse permutation, not a second traversal
//	written by hand.
//
// ✨ Surface:
//   - Order(pattern, rows, cols) — spiral_in, spiral_out, snake, diagonal
//   - ZigzagOrder(rails, n) — Rail Fence bounce assignment
//   - MyszkowskiOrder(keyword, rows) — keyword letter grouping
//   - Permutation / ColumnPermutation / Invert / Apply — the bridge
//   - Normalize, Pad, PadCount, StripPad — text preparation and padding
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cipherion/grid"
//
//	order, err := grid.Order(grid.SpiralIn, 3, 4)
//	perm := grid.Permutation(order, 4)
//	cipher, err := grid.Apply(perm, "ABCDEFGHIJKL")
//	plain, err  := grid.Apply(grid.Invert(perm), cipher)
//
// Determinism: every generator enumerates cells in a fixed order, so the
// same shape always yields the same permutation.
//
// Complexity: all generators are O(rows·cols) time and memory.
package grid
