package problema

import (
	"errors"

	"github.com/tuneinsight/problema/codec"
)

// EncryptChar encrypts a single code point: plugboard, forward rotor
// cascade, rotor advance, backward cascade, then XOR of the big-endian
// 32-bit byte view with the feedback buffer. The feedback is updated with
// the emitted (post-XOR) bytes. Code points outside the BMP bypass the
// plugboard and rotors but still participate in the feedback chain.
//
// On a nil or uninitialized context the input is returned unchanged.
func (ctx *Context) EncryptChar(input uint32) uint32 {

	if ctx == nil || !ctx.initialized {
		return input
	}

	ctx.encryptMode = true

	debugUnicode("char before encryption", input)

	output := ctx.plug.Apply(input)
	debugUnicode("after plugboard", output)

	output = ctx.rotors.ApplyForward(output)
	debugUnicode("after forward rotors", output)

	ctx.rotors.Advance()

	output = ctx.rotors.ApplyBackward(output)
	debugUnicode("after backward rotors", output)

	var b [4]byte
	b[0] = byte(output >> 24)
	b[1] = byte(output >> 16)
	b[2] = byte(output >> 8)
	b[3] = byte(output)

	for i := 0; i < 4; i++ {
		b[i] ^= ctx.feedback[i]
	}

	output = uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])

	// The feedback carries the emitted ciphertext bytes into the next
	// character.
	copy(ctx.feedback[:4], b[:])

	debugUnicode("char after encryption", output)

	return output
}

// DecryptChar decrypts a single code point, mirroring EncryptChar in exact
// reverse order: feedback XOR first, then backward cascade, rotor advance,
// forward cascade and plugboard. The feedback is updated with the received
// (pre-XOR) ciphertext bytes, so that both directions observe the same
// feedback value at matching character positions.
//
// On a nil or uninitialized context the input is returned unchanged.
func (ctx *Context) DecryptChar(input uint32) uint32 {

	if ctx == nil || !ctx.initialized {
		return input
	}

	ctx.encryptMode = false

	debugUnicode("char before decryption", input)

	var in [4]byte
	in[0] = byte(input >> 24)
	in[1] = byte(input >> 16)
	in[2] = byte(input >> 8)
	in[3] = byte(input)

	b := in
	for i := 0; i < 4; i++ {
		b[i] ^= ctx.feedback[i]
	}

	output := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])

	copy(ctx.feedback[:4], in[:])

	output = ctx.rotors.ApplyBackward(output)
	debugUnicode("after backward rotors", output)

	ctx.rotors.Advance()

	output = ctx.rotors.ApplyForward(output)
	debugUnicode("after forward rotors", output)

	output = ctx.plug.Apply(output)
	debugUnicode("after plugboard", output)

	debugUnicode("char after decryption", output)

	return output
}

// Encrypt encrypts a UTF-8 input and returns the UTF-8 ciphertext, one
// output character per input character. The feedback buffer is reset on
// entry but rotor positions are not: encrypting twice with the same context
// yields different ciphertexts. Use a fresh context for reproducible runs.
func (ctx *Context) Encrypt(input []byte) ([]byte, error) {

	if ctx == nil {
		return nil, ErrNullInput
	}

	if !ctx.initialized {
		return nil, ErrNotInitialized
	}

	ctx.encryptMode = true

	for i := range ctx.feedback {
		ctx.feedback[i] = 0
	}

	cps, err := codec.Decode(input)
	if err != nil {
		return nil, codecError(err)
	}

	for i := range cps {
		cps[i] = ctx.EncryptChar(cps[i])
	}

	output, err := codec.Encode(cps)
	if err != nil {
		return nil, codecError(err)
	}

	return output, nil
}

// Decrypt decrypts a UTF-8 ciphertext and returns the UTF-8 plaintext. The
// feedback buffer is reset on entry but rotor positions are not; the
// decrypting context must be at the same rotor state the encrypting context
// was at when Encrypt was called.
func (ctx *Context) Decrypt(input []byte) ([]byte, error) {

	if ctx == nil {
		return nil, ErrNullInput
	}

	if !ctx.initialized {
		return nil, ErrNotInitialized
	}

	ctx.encryptMode = false

	for i := range ctx.feedback {
		ctx.feedback[i] = 0
	}

	cps, err := codec.Decode(input)
	if err != nil {
		return nil, codecError(err)
	}

	for i := range cps {
		cps[i] = ctx.DecryptChar(cps[i])
	}

	output, err := codec.Encode(cps)
	if err != nil {
		return nil, codecError(err)
	}

	return output, nil
}

// codecError maps codec sentinel errors to the stable error codes.
func codecError(err error) error {
	switch {
	case errors.Is(err, codec.ErrInvalidUTF8):
		return ErrInvalidUTF8
	case errors.Is(err, codec.ErrBufferTooSmall):
		return ErrBufferTooSmall
	default:
		return err
	}
}
