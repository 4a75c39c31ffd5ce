package problema

import (
	"github.com/zeebo/blake3"

	"github.com/tuneinsight/problema/plugboard"
	"github.com/tuneinsight/problema/raes"
	"github.com/tuneinsight/problema/rotor"
)

const (
	// KeySize is the master key length in bytes (256 bits).
	KeySize = 32

	// BlockSize is the block and feedback length in bytes (128 bits).
	BlockSize = 16

	// NumRotors is the number of rotors in the cipher.
	NumRotors = rotor.NumRotors
)

// Context holds the full key-scheduled state of the cipher: the rotor bank,
// the plugboard, the reduced-AES tables and the feedback buffer.
//
// A Context is a mutable state machine: every character operation advances
// rotor positions, and every character or block operation rewrites the
// feedback buffer. It must not be
// shared between concurrent streams; instantiate one Context per stream
// instead, as NewContext is deterministic in the key. The rotor tables
// amount to roughly 4 MiB and are read-only after NewContext.
type Context struct {
	key         [KeySize]byte
	rotors      *rotor.Bank
	plug        *plugboard.Plugboard
	block       *raes.State
	feedback    [BlockSize]byte
	fingerprint [32]byte
	encryptMode bool
	initialized bool
}

// NewContext derives a fresh cipher context from a 32-byte master key.
// Returns ErrNullInput on a nil key and ErrInvalidKey on any other length.
func NewContext(key []byte) (*Context, error) {

	if key == nil {
		return nil, ErrNullInput
	}

	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	ctx := new(Context)
	copy(ctx.key[:], key)

	ctx.rotors = rotor.NewBank(key)
	ctx.plug = plugboard.New(key)
	ctx.block = raes.New(key)
	ctx.fingerprint = blake3.Sum256(key)

	ctx.encryptMode = true
	ctx.initialized = true

	debugf("context initialized")

	return ctx, nil
}

// Initialized reports whether the context holds a valid key schedule.
func (ctx *Context) Initialized() bool {
	return ctx != nil && ctx.initialized
}

// Fingerprint returns a blake3 digest identifying the key schedule. Two
// contexts derived from the same key share the same fingerprint. The
// fingerprint survives Cleanup.
func (ctx *Context) Fingerprint() [32]byte {
	return ctx.fingerprint
}

// Cleanup zeroizes the key and feedback buffers along with the derived
// rotor, plugboard and S-box tables, and marks the context uninitialized.
// The context must not be used afterwards.
func (ctx *Context) Cleanup() {

	if ctx == nil {
		return
	}

	for i := range ctx.key {
		ctx.key[i] = 0
	}
	for i := range ctx.feedback {
		ctx.feedback[i] = 0
	}

	if ctx.rotors != nil {
		ctx.rotors.Zeroize()
	}
	if ctx.plug != nil {
		ctx.plug.Zeroize()
	}
	if ctx.block != nil {
		ctx.block.Zeroize()
	}

	ctx.initialized = false

	debugf("context cleaned up")
}
