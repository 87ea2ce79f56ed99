// output.go - BLAKE3 output nodes and extendable output
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package blake3

import "io"

// outputNode holds everything needed to run the final compression of a
// chunk or parent node.  It can be reduced to a chaining value, or, if it
// is the root of the tree, expanded into an arbitrary amount of output.
type outputNode struct {
	inputCV  [8]uint32
	block    [16]uint32
	counter  uint64
	blockLen uint32
	flags    uint32
}

func (n *outputNode) chainingValue() [8]uint32 {
	return first8Words(compress(&n.inputCV, &n.block, n.counter, n.blockLen, n.flags))
}

// rootBytes fills out with root output, starting at the 64 byte output
// block outputBlock.  The node's own counter is replaced by the output
// block counter.
func (n *outputNode) rootBytes(out []byte, outputBlock uint64) {
	for len(out) > 0 {
		words := compress(&n.inputCV, &n.block, outputBlock, n.blockLen, n.flags|flagRoot)
		out = out[storeWords(out, words[:]):]
		outputBlock++
	}
}

// parentNode returns the node that merges two child chaining values.
func parentNode(left, right, key *[8]uint32, flags uint32) outputNode {
	n := outputNode{
		inputCV:  *key,
		blockLen: BlockSize,
		flags:    flags | flagParent,
	}
	copy(n.block[:8], left[:])
	copy(n.block[8:], right[:])
	return n
}

// OutputReader is a reader over the extendable output of a finalized
// BLAKE3 hash.  The output stream is deterministic and effectively
// unbounded, and may be re-read from any position via Seek.
type OutputReader struct {
	node outputNode
	pos  uint64

	buf      [BlockSize]byte
	bufBlock uint64
	bufValid bool
}

func newOutputReader(root outputNode) *OutputReader {
	return &OutputReader{node: root}
}

// Read fills p with the next len(p) bytes of output.  It never fails.
func (r *OutputReader) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		blk, off := r.pos/BlockSize, int(r.pos%BlockSize)
		if off == 0 && len(p) >= BlockSize {
			// Whole blocks go straight to the destination.
			whole := len(p) &^ (BlockSize - 1)
			r.node.rootBytes(p[:whole], blk)
			p = p[whole:]
			r.pos += uint64(whole)
			continue
		}

		if !r.bufValid || r.bufBlock != blk {
			r.node.rootBytes(r.buf[:], blk)
			r.bufBlock, r.bufValid = blk, true
		}
		copied := copy(p, r.buf[off:])
		p = p[copied:]
		r.pos += uint64(copied)
	}
	return n, nil
}

// Seek sets the position of the next Read.  Only io.SeekStart and
// io.SeekCurrent are supported, as the output has no end.
func (r *OutputReader) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(r.pos) + offset
	default:
		return int64(r.pos), ErrInvalidSeek
	}
	if pos < 0 {
		return int64(r.pos), ErrInvalidSeek
	}
	r.pos = uint64(pos)
	return pos, nil
}
