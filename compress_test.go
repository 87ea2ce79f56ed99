// compress_test.go - BLAKE3 compression function tests
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package blake3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMsgSchedule(t *testing.T) {
	require := require.New(t)

	var row [16]uint8
	for i := range row {
		row[i] = uint8(i)
	}
	for r := 0; r < blake3Rounds; r++ {
		require.Equal(row, msgSchedule[r], "round %d", r)

		var next [16]uint8
		for i, p := range msgPermutation {
			next[i] = row[p]
		}
		row = next
	}
}

func TestCompress(t *testing.T) {
	require := require.New(t)

	var m [16]uint32
	for i := range m {
		m[i] = uint32(i) * 0x01010101
	}

	a := compress(&iv, &m, 0, BlockSize, flagChunkStart|flagChunkEnd)
	b := compress(&iv, &m, 0, BlockSize, flagChunkStart|flagChunkEnd)
	require.Equal(a, b, "compress is deterministic")

	// Every input word must influence the output.
	require.NotEqual(a, compress(&iv, &m, 1, BlockSize, flagChunkStart|flagChunkEnd), "counter low")
	require.NotEqual(a, compress(&iv, &m, 1<<32, BlockSize, flagChunkStart|flagChunkEnd), "counter high")
	require.NotEqual(a, compress(&iv, &m, 0, BlockSize-1, flagChunkStart|flagChunkEnd), "block length")
	require.NotEqual(a, compress(&iv, &m, 0, BlockSize, flagChunkStart|flagChunkEnd|flagRoot), "flags")

	m2 := m
	m2[15] ^= 1
	require.NotEqual(a, compress(&iv, &m2, 0, BlockSize, flagChunkStart|flagChunkEnd), "message")

	cv := iv
	cv[7] ^= 1
	require.NotEqual(a, compress(&cv, &m, 0, BlockSize, flagChunkStart|flagChunkEnd), "chaining value")

	// The inputs are not modified.
	require.Equal([8]uint32{iv0, iv1, iv2, iv3, iv4, iv5, iv6, iv7}, iv)
	require.Equal(uint32(15)*0x01010101, m[15])
}

func TestFlagsDistinct(t *testing.T) {
	flags := []uint32{
		flagChunkStart,
		flagChunkEnd,
		flagParent,
		flagRoot,
		flagKeyedHash,
		flagDeriveKeyContext,
		flagDeriveKeyMaterial,
	}
	var seen uint32
	for _, f := range flags {
		require.Zero(t, seen&f, "flag 0x%x overlaps", f)
		seen |= f
	}
}

func BenchmarkCompress(b *testing.B) {
	var m [16]uint32
	cv := iv
	b.SetBytes(BlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cv = first8Words(compress(&cv, &m, uint64(i), BlockSize, 0))
	}
}
