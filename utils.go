// utils.go - Byte/word conversion and state purging
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package blake3

import "encoding/binary"

// loadBlock decodes a 64 byte block into message words.
func loadBlock(b *[BlockSize]byte) (m [16]uint32) {
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return
}

// loadKey decodes a KeySize byte key into key words.
func loadKey(key []byte) (k [8]uint32) {
	_ = key[KeySize-1] // Bounds check elimination.
	for i := range k {
		k[i] = binary.LittleEndian.Uint32(key[i*4:])
	}
	return
}

// storeWords encodes as many of the words as fit into out, and returns the
// number of bytes written.
func storeWords(out []byte, words []uint32) int {
	off := 0
	for _, w := range words {
		if len(out)-off >= 4 {
			binary.LittleEndian.PutUint32(out[off:], w)
			off += 4
			continue
		}

		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], w)
		return off + copy(out[off:], tmp[:])
	}
	return off
}

func burnUint32s(b []uint32) {
	for i := range b {
		b[i] = 0
	}
}

func burnBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Shamelessly stolen from the Go runtime library.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
