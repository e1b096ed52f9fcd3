// Package random provides cryptographic seed generation helpers.
//
// Seeds drawn here initialize the math/rand sources behind mock data so a
// run can be reproduced by passing the reported seed back in.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a non-zero random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		// Zero means "draw a seed" to callers, so never hand it out.
		if seed := int64(binary.LittleEndian.Uint64(b[:])); seed != 0 {
			return seed, nil
		}
	}
}
