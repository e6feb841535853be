package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// SHA256 returns the hex encoded SHA-256 digest of input.
func SHA256(input string) string {
	return SHA256Bytes([]byte(input))
}

// SHA256Bytes returns the hex encoded SHA-256 digest of input.
func SHA256Bytes(input []byte) string {
	sum := sha256.Sum256(input)
	return hex.EncodeToString(sum[:])
}

// SHA256Reader hashes everything read from r.
func SHA256Reader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ShortChecksum returns the first n hex characters of the SHA-256 digest of
// input, or the whole digest when n is out of range.
func ShortChecksum(input []byte, n int) string {
	sum := SHA256Bytes(input)
	if n <= 0 || n >= len(sum) {
		return sum
	}
	return sum[:n]
}
