// SPDX-FileCopyrightText: 2026 The pakfs Authors
//
// SPDX-License-Identifier: MIT

package pakfs

import "strings"

// Normalize converts a raw path into its canonical virtual form: every
// backslash becomes a forward slash and a single leading and trailing slash
// are removed. Letter case is left unchanged; lookups fold case separately
// so display paths keep the spelling of the container that registered them.
//
// Normalize is idempotent. The empty string is valid and denotes the root.
func Normalize(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	path = strings.TrimSuffix(path, "/")
	path = strings.TrimPrefix(path, "/")

	return path
}

// foldPath returns the case-insensitive lookup key for a normalized path.
func foldPath(path string) string {
	return strings.ToLower(path)
}

// parentPath returns the parent of a normalized virtual path. It returns ""
// for top-level paths and for the root itself.
func parentPath(path string) string {
	idx := strings.LastIndexByte(path, '/')
	if idx < 0 {
		return ""
	}

	return path[:idx]
}
