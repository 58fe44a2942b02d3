// SPDX-License-Identifier: MIT
// Package: optgrow/cache
//
// key.go — content-derived cache keys.
//
// Contract (strict):
//   - Deterministic: identical sections ⇒ identical key, on every
//     platform (fixed little-endian encoding of IEEE-754 bits).
//   - Section boundaries are part of the content: each section is
//     length-prefixed, so ({a,b},{c}) and ({a},{b,c}) never collide
//     by construction.

package cache

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Key identifies a solver result by the exact content of its inputs.
// Keys are 16-char lowercase hex strings, safe for use as file names.
type Key string

// KeyOf derives a Key by feeding every section through one xxhash
// digest, each prefixed with its length.
//
// Complexity: O(total values) time, O(1) space.
func KeyOf(sections ...[]float64) Key {
	h := xxhash.New()

	var buf [8]byte
	for _, sec := range sections {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(sec)))
		_, _ = h.Write(buf[:]) // xxhash.Write never fails
		for _, v := range sec {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = h.Write(buf[:])
		}
	}

	return Key(fmt.Sprintf("%016x", h.Sum64()))
}
