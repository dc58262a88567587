// SPDX-License-Identifier: MIT

package cipher

import "sort"

// Family groups catalog entries by mechanism.
type Family int

const (
	// Substitution replaces each letter independently through one fixed map.
	Substitution Family = iota
	// Polyalphabetic varies the substitution map per position via a key stream.
	Polyalphabetic
	// Polygraphic enciphers blocks of letters together.
	Polygraphic
	// Transposition permutes character positions without changing letters.
	Transposition
)

// familyNames is the canonical Family↔name mapping.
var familyNames = map[Family]string{
	Substitution:   "substitution",
	Polyalphabetic: "polyalphabetic",
	Polygraphic:    "polygraphic",
	Transposition:  "transposition",
}

// String returns the canonical family name, or "unknown" for
// out-of-range values.
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}

	return "unknown"
}

// Info describes one catalog entry: its canonical lowercase name, its
// family, and whether it takes a key at all (Atbash does not).
type Info struct {
	Name   string
	Family Family
	Keyed  bool
}

// catalog is the static registry of every variant this package builds.
var catalog = []Info{
	{Name: "affine", Family: Substitution, Keyed: true},
	{Name: "atbash", Family: Substitution, Keyed: false},
	{Name: "august", Family: Polyalphabetic, Keyed: true},
	{Name: "autokey", Family: Polyalphabetic, Keyed: true},
	{Name: "beaufort", Family: Polyalphabetic, Keyed: true},
	{Name: "caesar", Family: Substitution, Keyed: true},
	{Name: "hill", Family: Polygraphic, Keyed: true},
	{Name: "myszkowski", Family: Transposition, Keyed: true},
	{Name: "railfence", Family: Transposition, Keyed: true},
	{Name: "route", Family: Transposition, Keyed: true},
	{Name: "vigenere", Family: Polyalphabetic, Keyed: true},
}

// Catalog lists every cipher this package implements, sorted by name.
// The result is a fresh copy; callers may reorder it freely.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Describe looks a cipher up by its canonical name; ok is false for
// names outside the catalog. Discovery only — construction goes through
// the per-variant New functions, since every key has its own shape.
func Describe(name string) (Info, bool) {
	for _, info := range catalog {
		if info.Name == name {
			return info, true
		}
	}

	return Info{}, false
}
