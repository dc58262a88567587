package alphabet_test

import (
	"fmt"

	"github.com/katalvlaran/cipherion/alphabet"
)

// ExampleClassify shows the three kinds of runes a cipher meets:
// uppercase letters, lowercase letters, and passthrough characters.
func ExampleClassify() {
	for _, r := range []rune{'H', 'e', '!'} {
		sym := alphabet.Classify(r)
		if !sym.Alpha {
			fmt.Printf("%q passes through\n", sym.Rune)
			continue
		}
		fmt.Printf("%q residue=%d upper=%v\n", sym.Rune, sym.Residue, sym.Upper)
	}
	// Output:
	// 'H' residue=7 upper=true
	// 'e' residue=4 upper=false
	// '!' passes through
}

// ExampleFold canonicalizes accented text before enciphering, so a
// Latin-26 cipher can accept it without dropping letters.
func ExampleFold() {
	fmt.Println(alphabet.Fold("Attaque à l'café"))
	// Output:
	// Attaque a l'cafe
}

// ExampleLetters prepares text for a block cipher that cannot carry
// spacing or punctuation.
func ExampleLetters() {
	fmt.Println(alphabet.Letters("Hello, World!"))
	// Output:
	// HELLOWORLD
}
