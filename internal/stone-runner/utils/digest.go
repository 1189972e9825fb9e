package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Keccak256Hex returns the hex-encoded Keccak-256 digest of data. Used to
// fingerprint memory and trace blobs in logs so a failing run can be
// matched to its inputs without keeping the blobs around.
func Keccak256Hex(data []byte) string {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
