// stack.go - BLAKE3 chaining value stack
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package blake3

// maxStackDepth bounds the stack by the width of the chunk counter, as
// the stack holds one entry per set bit of the completed chunk count.
const maxStackDepth = 64

// cvStack folds completed chunks into the tree as they arrive.  Each
// entry is the chaining value of a complete power-of-two subtree, with
// the largest subtree at the bottom.
type cvStack struct {
	entries [maxStackDepth][8]uint32
	n       int
}

func (s *cvStack) len() int {
	return s.n
}

func (s *cvStack) push(cv *[8]uint32) {
	if s.n == maxStackDepth {
		panic("blake3: chaining value stack overflow")
	}
	s.entries[s.n] = *cv
	s.n++
}

func (s *cvStack) pop() [8]uint32 {
	if s.n == 0 {
		panic("blake3: chaining value stack underflow")
	}
	s.n--
	cv := s.entries[s.n]
	burnUint32s(s.entries[s.n][:])
	return cv
}

// addChunkCV adds the chaining value of a newly completed chunk, where
// totalChunks is the number of chunks completed including it.  Every
// trailing zero bit of totalChunks is a subtree that is now complete.
func (s *cvStack) addChunkCV(cv [8]uint32, totalChunks uint64, key *[8]uint32, flags uint32) {
	for totalChunks&1 == 0 {
		left := s.pop()
		parent := parentNode(&left, &cv, key, flags)
		cv = parent.chainingValue()
		totalChunks >>= 1
	}
	s.push(&cv)
}

// rootNode merges the node of the final chunk with every subtree on the
// stack, smallest (top) first, and returns the root of the tree.  The
// stack is left untouched.
func (s *cvStack) rootNode(last outputNode, key *[8]uint32, flags uint32) outputNode {
	node := last
	for i := s.n - 1; i >= 0; i-- {
		right := node.chainingValue()
		node = parentNode(&s.entries[i], &right, key, flags)
	}
	return node
}

func (s *cvStack) reset() {
	for i := 0; i < s.n; i++ {
		burnUint32s(s.entries[i][:])
	}
	s.n = 0
}
