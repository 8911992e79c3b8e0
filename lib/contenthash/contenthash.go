// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package contenthash

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 digest.
type Digest [32]byte

// String returns the hex encoding of the digest. This is the format
// used in log output.
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// IsZero reports whether the digest is unset.
func (digest Digest) IsZero() bool {
	return digest == Digest{}
}

// Hasher accumulates a digest over everything written to it.
type Hasher struct {
	state *blake3.Hasher
}

// New returns an empty Hasher.
func New() *Hasher {
	return &Hasher{state: blake3.New()}
}

// Write adds data to the running digest. It never fails.
func (hasher *Hasher) Write(data []byte) (int, error) {
	return hasher.state.Write(data)
}

// Sum returns the digest of everything written so far.
func (hasher *Hasher) Sum() Digest {
	var digest Digest
	copy(digest[:], hasher.state.Sum(nil))
	return digest
}

// HashBytes returns the digest of data.
func HashBytes(data []byte) Digest {
	return Digest(blake3.Sum256(data))
}

// HashFile computes the digest of the file at path, streaming it
// through the hasher so memory use does not grow with file size.
func HashFile(path string) (Digest, error) {
	file, err := os.Open(path)
	if err != nil {
		return Digest{}, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	hasher := New()
	if _, err := io.Copy(hasher, file); err != nil {
		return Digest{}, fmt.Errorf("hashing %s: %w", path, err)
	}
	return hasher.Sum(), nil
}

// Parse decodes a hex-encoded digest. Returns an error if the string
// is not a 64-character hex encoding of 32 bytes.
func Parse(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing content digest: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("content digest is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}
