// Package sampling implements secure pseudo-random number generation.
package sampling

import (
	"crypto/rand"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for secure (keyed) deterministic generation of random
// bytes.
type PRNG interface {
	Read(sum []byte) (n int, err error)
	Reset()
}

// KeyedPRNG is a structure storing the parameters used to securely and
// deterministically generate shared sequences of random bytes among different
// parties using the hash function blake2b. Backward sequence security
// (given the digest i, compute the digest i-1) is ensured by default, however
// forward sequence security (given the digest i, compute the digest i+1) is
// only ensured if the KeyedPRNG is keyed.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG. Accepts an optional key,
// else set key=nil which is treated as key=[]byte{}.
// WARNING: A PRNG INITIALISED WITH key=nil IS INSECURE!
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {

	var err error

	prng := new(KeyedPRNG)
	prng.key = key

	if prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key); err != nil {
		return nil, err
	}

	return prng, nil
}

// NewPRNG creates KeyedPRNG keyed from rand.Read for instances were no key
// should be provided by the user.
func NewPRNG() (*KeyedPRNG, error) {

	key := make([]byte, 64)

	if _, err := rand.Read(key); err != nil {
		return nil, err
	}

	return NewKeyedPRNG(key)
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *KeyedPRNG) Key() []byte {
	key := make([]byte, len(prng.key))
	copy(key, prng.key)
	return key
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}
