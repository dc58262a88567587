package grid_test

import (
	"fmt"

	"github.com/katalvlaran/cipherion/grid"
)

// ExampleOrder shows the spiral_in read-out of a 3×4 grid and how the
// inverse permutation undoes it — the whole of Route encryption and
// decryption in four lines.
func ExampleOrder() {
	//	A B C D
	//	E F G H
	//	I J K L
	order, _ := grid.Order(grid.SpiralIn, 3, 4)
	perm := grid.Permutation(order, 4)

	cipher, _ := grid.Apply(perm, "ABCDEFGHIJKL")
	plain, _ := grid.Apply(grid.Invert(perm), cipher)

	fmt.Println(cipher)
	fmt.Println(plain)
	// Output:
	// ABCDHLKJIEFG
	// ABCDEFGHIJKL
}

// ExampleZigzagOrder prints the rail assignment of the Rail Fence bounce
// over eight characters.
func ExampleZigzagOrder() {
	order, _ := grid.ZigzagOrder(3, 8)
	for _, c := range order {
		fmt.Printf("rail %d ← position %d\n", c.Row, c.Col)
	}
	// Output:
	// rail 0 ← position 0
	// rail 0 ← position 4
	// rail 1 ← position 1
	// rail 1 ← position 3
	// rail 1 ← position 5
	// rail 1 ← position 7
	// rail 2 ← position 2
	// rail 2 ← position 6
}

// ExamplePad records the pad count before encrypting, the only way to
// strip padding after decrypting.
func ExamplePad() {
	text := grid.Normalize("ATTACK AT DAWN") // 12 letters
	pad := grid.PadCount(len(text), 5)
	padded := grid.Pad(text, 5)

	fmt.Println(padded)
	fmt.Println(grid.StripPad(padded, pad))
	// Output:
	// ATTACKATDAWNXXX
	// ATTACKATDAWN
}
