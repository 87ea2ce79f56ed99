// compress.go - BLAKE3 compression function
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package blake3

import "math/bits"

const (
	iv0 = 0x6a09e667
	iv1 = 0xbb67ae85
	iv2 = 0x3c6ef372
	iv3 = 0xa54ff53a
	iv4 = 0x510e527f
	iv5 = 0x9b05688c
	iv6 = 0x1f83d9ab
	iv7 = 0x5be0cd19

	blake3Rounds = 7

	flagChunkStart        uint32 = 1 << 0
	flagChunkEnd          uint32 = 1 << 1
	flagParent            uint32 = 1 << 2
	flagRoot              uint32 = 1 << 3
	flagKeyedHash         uint32 = 1 << 4
	flagDeriveKeyContext  uint32 = 1 << 5
	flagDeriveKeyMaterial uint32 = 1 << 6
)

var (
	iv = [8]uint32{iv0, iv1, iv2, iv3, iv4, iv5, iv6, iv7}

	// msgPermutation is applied to the message words between rounds.
	msgPermutation = [16]uint8{2, 6, 3, 10, 7, 0, 4, 13, 1, 11, 12, 5, 9, 14, 15, 8}

	// msgSchedule[r] is msgPermutation applied r times to the identity,
	// so round r reads m[msgSchedule[r][i]] without permuting in place.
	msgSchedule = [blake3Rounds][16]uint8{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		{2, 6, 3, 10, 7, 0, 4, 13, 1, 11, 12, 5, 9, 14, 15, 8},
		{3, 4, 10, 12, 13, 2, 7, 14, 6, 5, 9, 0, 11, 15, 8, 1},
		{10, 7, 12, 9, 14, 3, 13, 15, 4, 0, 11, 2, 5, 8, 1, 6},
		{12, 13, 9, 11, 15, 10, 14, 8, 7, 2, 5, 3, 0, 1, 6, 4},
		{9, 14, 11, 5, 8, 12, 15, 1, 13, 3, 0, 10, 2, 6, 4, 7},
		{11, 15, 5, 0, 1, 9, 8, 6, 14, 10, 2, 12, 3, 4, 7, 13},
	}
)

// g is the quarter-round mixing function.
func g(s *[16]uint32, a, b, c, d int, mx, my uint32) {
	sa, sb, sc, sd := s[a], s[b], s[c], s[d]

	sa += sb + mx
	sd = bits.RotateLeft32(sd^sa, -16)
	sc += sd
	sb = bits.RotateLeft32(sb^sc, -12)
	sa += sb + my
	sd = bits.RotateLeft32(sd^sa, -8)
	sc += sd
	sb = bits.RotateLeft32(sb^sc, -7)

	s[a], s[b], s[c], s[d] = sa, sb, sc, sd
}

func round(s *[16]uint32, m *[16]uint32, sched *[16]uint8) {
	// Mix the columns.
	g(s, 0, 4, 8, 12, m[sched[0]], m[sched[1]])
	g(s, 1, 5, 9, 13, m[sched[2]], m[sched[3]])
	g(s, 2, 6, 10, 14, m[sched[4]], m[sched[5]])
	g(s, 3, 7, 11, 15, m[sched[6]], m[sched[7]])

	// Mix the diagonals.
	g(s, 0, 5, 10, 15, m[sched[8]], m[sched[9]])
	g(s, 1, 6, 11, 12, m[sched[10]], m[sched[11]])
	g(s, 2, 7, 8, 13, m[sched[12]], m[sched[13]])
	g(s, 3, 4, 9, 14, m[sched[14]], m[sched[15]])
}

// compress runs the BLAKE3 compression function and returns the full 16
// word output.  The first 8 words are the new chaining value, all 16 are
// used for extended output.
func compress(cv *[8]uint32, m *[16]uint32, counter uint64, blockLen, flags uint32) [16]uint32 {
	s := [16]uint32{
		cv[0], cv[1], cv[2], cv[3],
		cv[4], cv[5], cv[6], cv[7],
		iv0, iv1, iv2, iv3,
		uint32(counter), uint32(counter >> 32), blockLen, flags,
	}

	for r := range msgSchedule {
		round(&s, m, &msgSchedule[r])
	}

	for i := 0; i < 8; i++ {
		s[i] ^= s[i+8]
		s[i+8] ^= cv[i]
	}

	return s
}

// first8Words truncates a compression output to a chaining value.
func first8Words(s [16]uint32) (cv [8]uint32) {
	copy(cv[:], s[:8])
	return
}
