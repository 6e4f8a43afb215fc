// SPDX-FileCopyrightText: 2026 The pakfs Authors
//
// SPDX-License-Identifier: MIT

package pakfs

import "crypto/sha256"

// DeriveKey derives the byte transform key for a password. The key is the
// SHA-256 digest of the password bytes: deterministic for a given password
// and always 32 bytes long. It is applied cyclically by [Transform].
func DeriveKey(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return sum[:]
}

// Transform XORs every byte of data with key[i mod len(key)] and returns the
// result. It is its own inverse, so the same call packs and unpacks.
//
// This is an obfuscation deterrent for asset packages, not encryption.
// There is no authentication and no integrity check, and transforming with
// the wrong key silently yields garbage.
func Transform(data, key []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}

	return out
}
