// Package fingerprint computes a short content hash of a loaded rule
// table, so callers embedding their own pattern data can assert which
// table version produced a given transduction. It runs only at
// construction time — never on the per-call transduction path.
package fingerprint

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Of returns a hex-encoded BLAKE2b-256 digest of raw rule-table bytes.
func Of(raw []byte) string {
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
