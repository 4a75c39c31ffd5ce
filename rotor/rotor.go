// Package rotor implements the Enigma-style rotor bank of the Problema
// cipher: eight key-derived permutations over the Basic Multilingual Plane,
// each paired with a rotating offset and a set of notch positions driving an
// odometer-style carry.
package rotor

import (
	"fmt"

	"github.com/tuneinsight/problema/utils/structs"
)

const (
	// Size is the domain of a rotor permutation (the BMP).
	Size = 65536

	// NumRotors is the number of rotors in a bank.
	NumRotors = 8

	// MaxNotches is the maximum number of notches per rotor.
	MaxNotches = 8

	// KeySize is the expected master key length in bytes.
	KeySize = 32
)

// Rotor pairs a substitution table over [0, Size) with a rotating offset and
// the notch positions that trigger the carry into the next rotor.
type Rotor struct {
	Mapping  structs.Vector[uint32]
	Position uint32
	Notches  structs.Vector[uint32]
}

func (r *Rotor) atNotch() bool {
	for _, n := range r.Notches {
		if r.Position == n {
			return true
		}
	}
	return false
}

// Bank holds the eight forward rotors and their inverses. The inverse rotors
// share position and notches with their forward companion at all times.
type Bank struct {
	Forward [NumRotors]Rotor
	Inverse [NumRotors]Rotor
}

// NewBank derives a rotor bank from the 32-byte master key. Each rotor's
// start position, notch set and permutation are deterministic functions of
// the key. Panics if the key length is not KeySize.
func NewBank(key []byte) *Bank {

	if len(key) != KeySize {
		panic(fmt.Sprintf("invalid key length %d (expected %d)", len(key), KeySize))
	}

	b := new(Bank)

	for r := 0; r < NumRotors; r++ {

		fwd := &b.Forward[r]
		inv := &b.Inverse[r]

		fwd.Position = uint32(key[r%KeySize]) % Size

		numNotches := int(key[(r+1)%KeySize])%7 + 1
		fwd.Notches = make(structs.Vector[uint32], numNotches)
		for n := 0; n < numNotches; n++ {
			fwd.Notches[n] = uint32(int(key[(r+n+2)%KeySize]) * 251 % Size)
		}

		fwd.Mapping = make(structs.Vector[uint32], Size)
		for i := range fwd.Mapping {
			fwd.Mapping[i] = uint32(i)
		}

		// Fisher-Yates shuffle driven by the key bytes. The swap index
		// carries only 8 bits of entropy per step; this is part of the
		// reference algorithm and must not be replaced by a uniform shuffle.
		for i := Size - 1; i > 0; i-- {
			j := int(key[(r+i)%KeySize]) * i % (i + 1)
			fwd.Mapping[i], fwd.Mapping[j] = fwd.Mapping[j], fwd.Mapping[i]
		}

		inv.Mapping = make(structs.Vector[uint32], Size)
		for i, m := range fwd.Mapping {
			inv.Mapping[m] = uint32(i)
		}
		inv.Position = fwd.Position
		inv.Notches = make(structs.Vector[uint32], numNotches)
		copy(inv.Notches, fwd.Notches)
	}

	return b
}

// ApplyForward passes a code point through the rotors in order 0..7. Code
// points outside the BMP bypass the bank unchanged. The +position before
// lookup and -position after models the physical rotor offset.
func (b *Bank) ApplyForward(x uint32) uint32 {

	if x >= Size {
		return x
	}

	y := x
	for r := 0; r < NumRotors; r++ {
		pos := b.Forward[r].Position
		y = b.Forward[r].Mapping[(y+pos)%Size]
		y = (y + Size - pos) % Size
	}

	return y
}

// ApplyBackward passes a code point through the inverse rotors in order
// 7..0, undoing ApplyForward for the same rotor positions.
func (b *Bank) ApplyBackward(x uint32) uint32 {

	if x >= Size {
		return x
	}

	y := x
	for r := NumRotors - 1; r >= 0; r-- {
		pos := b.Inverse[r].Position
		y = (y + pos) % Size
		y = b.Inverse[r].Mapping[y]
		y = (y + Size - pos) % Size
	}

	return y
}

// Advance steps the bank by one character: rotor 0 always advances, and each
// rotor whose new position sits on a notch advances its successor. The carry
// stops at the first rotor not on a notch, so this is not a full odometer.
func (b *Bank) Advance() {

	b.Forward[0].Position = (b.Forward[0].Position + 1) % Size
	b.Inverse[0].Position = b.Forward[0].Position

	for r := 0; r < NumRotors-1; r++ {
		if !b.Forward[r].atNotch() {
			break
		}
		b.Forward[r+1].Position = (b.Forward[r+1].Position + 1) % Size
		b.Inverse[r+1].Position = b.Forward[r+1].Position
	}
}

// Positions returns the current forward rotor positions.
func (b *Bank) Positions() [NumRotors]uint32 {
	var p [NumRotors]uint32
	for r := range b.Forward {
		p[r] = b.Forward[r].Position
	}
	return p
}

// SetPositions sets all rotor positions, keeping forward and inverse rotors
// in sync. Positions are reduced modulo Size.
func (b *Bank) SetPositions(p [NumRotors]uint32) {
	for r := range b.Forward {
		b.Forward[r].Position = p[r] % Size
		b.Inverse[r].Position = b.Forward[r].Position
	}
}

// Zeroize clears the rotor tables, notches and positions.
func (b *Bank) Zeroize() {
	for r := range b.Forward {
		for _, rot := range []*Rotor{&b.Forward[r], &b.Inverse[r]} {
			for i := range rot.Mapping {
				rot.Mapping[i] = 0
			}
			for i := range rot.Notches {
				rot.Notches[i] = 0
			}
			rot.Position = 0
		}
	}
}
