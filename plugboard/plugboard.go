// Package plugboard implements the key-derived plugboard of the Problema
// cipher, a substitution over the Basic Multilingual Plane applied on the
// way into the rotor bank when encrypting and on the way out when
// decrypting.
package plugboard

import "fmt"

const (
	// Size is the domain of the plugboard mapping (the BMP).
	Size = 65536

	// KeySize is the expected master key length in bytes.
	KeySize = 32
)

// Plugboard is a substitution table over [0, Size). The construction swaps
// key-derived pairs on an identity mapping, which yields an involution as
// long as no two swaps touch the same index; the reference does not enforce
// non-overlap and neither does this implementation.
type Plugboard struct {
	mapping []uint32
}

// New derives a plugboard from the 32-byte master key. Panics if the key
// length is not KeySize.
func New(key []byte) *Plugboard {

	if len(key) != KeySize {
		panic(fmt.Sprintf("invalid key length %d (expected %d)", len(key), KeySize))
	}

	p := &Plugboard{mapping: make([]uint32, Size)}

	for i := range p.mapping {
		p.mapping[i] = uint32(i)
	}

	numSwaps := int(key[0])%100 + 50
	for i := 0; i < numSwaps; i++ {
		a := (int(key[i%KeySize])*251 + int(key[(i+1)%KeySize])) % Size
		b := (int(key[(i+2)%KeySize])*251 + int(key[(i+3)%KeySize])) % Size
		p.mapping[a], p.mapping[b] = p.mapping[b], p.mapping[a]
	}

	return p
}

// Apply substitutes a code point through the plugboard. Code points outside
// the BMP pass through unchanged.
func (p *Plugboard) Apply(x uint32) uint32 {
	if x < Size {
		return p.mapping[x]
	}
	return x
}

// Zeroize clears the mapping table.
func (p *Plugboard) Zeroize() {
	for i := range p.mapping {
		p.mapping[i] = 0
	}
}
