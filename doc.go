// SPDX-FileCopyrightText: 2026 The pakfs Authors
//
// SPDX-License-Identifier: MIT

// Package pakfs assembles a single read-only file hierarchy from an ordered
// list of root containers, either plain directories or zip archives. Files
// with equal virtual paths in later containers transparently override those
// in earlier ones. This is the layering used for mod and DLC packages: the
// base assets are mounted first and override packages after, while
// consumers address files purely by virtual path without knowing which
// container supplied the bytes.
//
// Virtual paths are case-insensitive, forward-slash separated and relative
// to the virtual root; "" denotes the root. Folders are implicit: a folder
// exists as soon as any container contributes a file below it. The full
// hierarchy is materialized eagerly when containers are mounted, trading
// memory for query speed.
//
// An [FS] is used in two phases: mount every container with
// [FS.AddRootContainer], then query. Mounting is not safe for concurrent
// use; once population is finished, read-only queries may be shared across
// goroutines. [FS.Close] releases the archives held open for entry handles
// and is idempotent.
//
// Archives produced by [PackFolder] may obfuscate their entries with a
// password-derived XOR key. This keeps casual eyes out of asset packages
// but is not encryption.
package pakfs
