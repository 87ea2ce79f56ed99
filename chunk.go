// chunk.go - BLAKE3 chunk state
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package blake3

// chunkState absorbs the (up to) ChunkSize bytes of a single leaf of the
// tree, chaining full blocks through the compression function.
type chunkState struct {
	cv               [8]uint32
	chunkCounter     uint64
	block            [BlockSize]byte
	blockLen         int
	blocksCompressed int
	flags            uint32
}

func newChunkState(key *[8]uint32, chunkCounter uint64, flags uint32) chunkState {
	return chunkState{
		cv:           *key,
		chunkCounter: chunkCounter,
		flags:        flags,
	}
}

func (c *chunkState) len() int {
	return BlockSize*c.blocksCompressed + c.blockLen
}

func (c *chunkState) remaining() int {
	return ChunkSize - c.len()
}

func (c *chunkState) isFull() bool {
	return c.len() == ChunkSize
}

func (c *chunkState) startFlag() uint32 {
	if c.blocksCompressed == 0 {
		return flagChunkStart
	}
	return 0
}

// update absorbs in, which MUST be at most c.remaining() bytes.
//
// A full block is only compressed once more input arrives, so the last
// block of the chunk is always left buffered for output().
func (c *chunkState) update(in []byte) {
	if len(in) > c.remaining() {
		panic("blake3: chunk capacity exceeded")
	}

	for len(in) > 0 {
		if c.blockLen == BlockSize {
			m := loadBlock(&c.block)
			c.cv = first8Words(compress(&c.cv, &m, c.chunkCounter, BlockSize, c.flags|c.startFlag()))
			c.blocksCompressed++
			burnBytes(c.block[:])
			c.blockLen = 0
		}

		n := copy(c.block[c.blockLen:], in)
		c.blockLen += n
		in = in[n:]
	}
}

// output returns the node for the chunk's final block.  The buffered tail
// is always zero padded, as update() clears the block buffer.
func (c *chunkState) output() outputNode {
	return outputNode{
		inputCV:  c.cv,
		block:    loadBlock(&c.block),
		counter:  c.chunkCounter,
		blockLen: uint32(c.blockLen),
		flags:    c.flags | c.startFlag() | flagChunkEnd,
	}
}

func (c *chunkState) burn() {
	burnUint32s(c.cv[:])
	burnBytes(c.block[:])
	c.blockLen, c.blocksCompressed = 0, 0
}
