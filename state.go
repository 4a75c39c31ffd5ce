package problema

import (
	"fmt"

	"github.com/tuneinsight/problema/utils"
	"github.com/tuneinsight/problema/utils/structs"
)

// State is a snapshot of the mutable part of a Context: rotor positions,
// feedback buffer and direction of the last per-character operation. The
// derived tables are not part of a State; they are a function of the key
// alone.
//
// A State lets a receiver catch up to a mid-stream sender without replaying
// traffic: snapshot the sender, transfer the bytes, and restore on a context
// initialized with the same key.
type State struct {
	Positions   structs.Vector[uint32]
	Feedback    structs.Vector[uint8]
	EncryptMode bool
}

// State returns a snapshot of the context's mutable state.
func (ctx *Context) State() *State {

	s := &State{
		Positions:   make(structs.Vector[uint32], NumRotors),
		Feedback:    make(structs.Vector[uint8], BlockSize),
		EncryptMode: ctx.encryptMode,
	}

	p := ctx.rotors.Positions()
	copy(s.Positions, p[:])
	copy(s.Feedback, ctx.feedback[:])

	return s
}

// SetState restores a snapshot previously taken with State on a context
// initialized with the same key. Returns ErrNullInput on a nil state and
// ErrNotInitialized on an uninitialized context.
func (ctx *Context) SetState(s *State) error {

	if ctx == nil || s == nil {
		return ErrNullInput
	}

	if !ctx.initialized {
		return ErrNotInitialized
	}

	if len(s.Positions) != NumRotors || len(s.Feedback) != BlockSize {
		return ErrInvalidKey
	}

	var p [NumRotors]uint32
	copy(p[:], s.Positions)
	ctx.rotors.SetPositions(p)
	copy(ctx.feedback[:], s.Feedback)
	ctx.encryptMode = s.EncryptMode

	return nil
}

// MarshalBinary encodes the state into a byte slice.
func (s *State) MarshalBinary() ([]byte, error) {

	b := utils.NewBuffer(make([]byte, 0, 4*NumRotors+BlockSize+1))

	b.WriteUint32Slice(s.Positions)
	b.WriteUint8Slice(s.Feedback)
	if s.EncryptMode {
		b.WriteUint8(1)
	} else {
		b.WriteUint8(0)
	}

	return b.Bytes(), nil
}

// UnmarshalBinary decodes a byte slice produced by MarshalBinary on the
// receiver.
func (s *State) UnmarshalBinary(data []byte) error {

	if len(data) != 4*NumRotors+BlockSize+1 {
		return fmt.Errorf("invalid State encoding: expected %d bytes but got %d", 4*NumRotors+BlockSize+1, len(data))
	}

	b := utils.NewBuffer(data)

	s.Positions = make(structs.Vector[uint32], NumRotors)
	b.ReadUint32Slice(s.Positions)
	s.Feedback = make(structs.Vector[uint8], BlockSize)
	b.ReadUint8Slice(s.Feedback)
	s.EncryptMode = b.ReadUint8() == 1

	return nil
}
