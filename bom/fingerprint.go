package bom

import (
	"fmt"

	"github.com/dchest/siphash"
)

// Fixed keys: the fingerprint is a stable checksum, not a MAC.
const (
	fingerprintK0 = uint64(0x6f73736175646974)
	fingerprintK1 = uint64(0x626f6d2e76312e30)
)

// Fingerprint condenses the rendered manifest into a short stable
// token. Two runs over an unchanged graph must agree on it; the run
// journal records it so drifting output gets noticed.
func (it *Manifest) Fingerprint() string {
	blob, err := it.AsYaml()
	if err != nil {
		return "invalid"
	}
	return fmt.Sprintf("%016x", siphash.Hash(fingerprintK0, fingerprintK1, blob))
}
