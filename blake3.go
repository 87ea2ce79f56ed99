// blake3.go - BLAKE3
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package blake3 implements the BLAKE3 cryptographic hash function.
//
// The Hasher supports the three BLAKE3 modes (hash, keyed hash and key
// derivation), implements hash.Hash, and exposes the extendable output via
// an io.Reader.  Only the portable scalar compression function is
// provided.
//
// This implementation is derived from the BLAKE3 reference implementation
// by Jack O'Connor et al.
package blake3

import (
	"errors"
	"hash"
	"io"
	"math"
)

const (
	// Size is the size of the default BLAKE3 digest in bytes.
	Size = 32

	// KeySize is the size of a key in bytes.
	KeySize = 32

	// BlockSize is the BLAKE3 block size in bytes.
	BlockSize = 64

	// ChunkSize is the size of a leaf of the BLAKE3 tree in bytes.
	ChunkSize = 1024
)

var (
	// ErrInvalidKeySize is the error returned when a key is an invalid
	// size.
	ErrInvalidKeySize = errors.New("blake3: invalid key size")

	// ErrInvalidOutputSize is the error thrown via a panic when a negative
	// output size is requested.
	ErrInvalidOutputSize = errors.New("blake3: invalid output size")

	// ErrChunkCounterOverflow is the error thrown via a panic when the
	// input is too long for the 64 bit chunk counter.
	ErrChunkCounterOverflow = errors.New("blake3: chunk counter overflow")

	// ErrInvalidSeek is the error returned when an OutputReader is seeked
	// to a negative offset, or relative to the end of the output.
	ErrInvalidSeek = errors.New("blake3: invalid seek")

	_ hash.Hash     = (*Hasher)(nil)
	_ io.ReadSeeker = (*OutputReader)(nil)
)

// Hasher is an incremental BLAKE3 instance.
//
// A Hasher is not safe for concurrent use.  Finalizing (Sum, Finalize, XOF)
// does not alter the state, so further writes extend the same input.
type Hasher struct {
	key   [8]uint32
	flags uint32

	chunk chunkState
	stack cvStack
}

// Write adds more data to the running hash.  It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		if h.chunk.isFull() {
			h.completeChunk()
		}

		take := h.chunk.remaining()
		if take > len(p) {
			take = len(p)
		}
		h.chunk.update(p[:take])
		p = p[take:]
	}
	return n, nil
}

// completeChunk pushes the full current chunk into the tree and starts
// the next one.
func (h *Hasher) completeChunk() {
	counter := h.chunk.chunkCounter
	if counter == math.MaxUint64 {
		panic(ErrChunkCounterOverflow)
	}

	node := h.chunk.output()
	h.stack.addChunkCV(node.chainingValue(), counter+1, &h.key, h.flags)
	h.chunk.burn()
	h.chunk = newChunkState(&h.key, counter+1, h.flags)
}

func (h *Hasher) rootNode() outputNode {
	return h.stack.rootNode(h.chunk.output(), &h.key, h.flags)
}

// Sum appends the Size byte digest of the data written so far to b and
// returns the resulting slice.
func (h *Hasher) Sum(b []byte) []byte {
	ret, out := sliceForAppend(b, Size)
	root := h.rootNode()
	root.rootBytes(out, 0)
	return ret
}

// Finalize returns outputLength bytes of output for the data written so
// far.  Any length is valid; shorter outputs are prefixes of longer ones.
func (h *Hasher) Finalize(outputLength int) []byte {
	if outputLength < 0 {
		panic(ErrInvalidOutputSize)
	}

	out := make([]byte, outputLength)
	root := h.rootNode()
	root.rootBytes(out, 0)
	return out
}

// XOF returns a reader over the extendable output for the data written
// so far.  The reader is independent of the Hasher.
func (h *Hasher) XOF() *OutputReader {
	return newOutputReader(h.rootNode())
}

// Reset discards all data written so far.  The key and mode are kept.
func (h *Hasher) Reset() {
	h.chunk.burn()
	h.stack.reset()
	h.chunk = newChunkState(&h.key, 0, h.flags)
}

// Size returns the number of bytes Sum will append.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize returns the hash's underlying block size.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

func newHasher(key *[8]uint32, flags uint32) *Hasher {
	h := &Hasher{
		key:   *key,
		flags: flags,
	}
	h.chunk = newChunkState(&h.key, 0, h.flags)
	return h
}

// New returns a new unkeyed BLAKE3 instance.
func New() *Hasher {
	return newHasher(&iv, 0)
}

// NewKeyed returns a new BLAKE3 instance in keyed hash mode.  The key
// MUST be KeySize bytes.
func NewKeyed(key []byte) (*Hasher, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}

	k := loadKey(key)
	h := newHasher(&k, flagKeyedHash)
	burnUint32s(k[:])
	return h, nil
}

// NewDeriveKey returns a new BLAKE3 instance in key derivation mode.  The
// context string should be hardcoded, globally unique and
// application-specific.  The key material is supplied via Write.
func NewDeriveKey(context string) *Hasher {
	ctxHasher := newHasher(&iv, flagDeriveKeyContext)
	_, _ = io.WriteString(ctxHasher, context)

	var ctxKey [KeySize]byte
	root := ctxHasher.rootNode()
	root.rootBytes(ctxKey[:], 0)
	ctxHasher.Reset()

	k := loadKey(ctxKey[:])
	h := newHasher(&k, flagDeriveKeyMaterial)
	burnBytes(ctxKey[:])
	burnUint32s(k[:])
	return h
}

// DeriveKey fills out with key material derived from the context string
// and the input key material.
func DeriveKey(context string, material, out []byte) {
	h := NewDeriveKey(context)
	_, _ = h.Write(material)
	root := h.rootNode()
	root.rootBytes(out, 0)
	h.Reset()
}

// Sum256 returns the Size byte BLAKE3 digest of data.
func Sum256(data []byte) (sum [Size]byte) {
	h := New()
	_, _ = h.Write(data)
	root := h.rootNode()
	root.rootBytes(sum[:], 0)
	return
}
