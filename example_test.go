// example_test.go - BLAKE3 examples
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package blake3_test

import (
	"encoding/hex"
	"fmt"
	"io"

	"gitlab.com/yawning/blake3.git"
)

func ExampleHasher() {
	h := blake3.New()
	_, _ = io.WriteString(h, "abc")
	fmt.Println(hex.EncodeToString(h.Sum(nil)))
	// Output: 6437b3ac38465133ffb63b75273a8db548c558465d79db03fd359c6cd5bd9d85
}

func ExampleHasher_XOF() {
	h := blake3.New()
	r := h.XOF()

	out := make([]byte, 48)
	_, _ = r.Read(out)
	fmt.Println(hex.EncodeToString(out[:32]))
	// Output: af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262
}
