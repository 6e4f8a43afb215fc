// SPDX-FileCopyrightText: 2026 The pakfs Authors
//
// SPDX-License-Identifier: MIT

package pakfs

import (
	"fmt"
	"slices"
	"strings"
)

// folderPrefix returns the folded listing prefix for a raw folder path: ""
// for the root, the folded path with a trailing slash otherwise.
func folderPrefix(folder string) string {
	norm := foldPath(Normalize(folder))
	if norm == "" {
		return ""
	}

	return norm + "/"
}

// ListFiles returns the virtual paths of the files contained in folder,
// sorted. With recursive set, files at any depth below folder are included,
// otherwise only direct members. "" and "/" denote the root.
//
// Listing a folder that does not exist yields an empty result, not an
// error, so enumeration does not require a prior existence check.
func (vfs *FS) ListFiles(folder string, recursive bool) []string {
	prefix := folderPrefix(folder)

	var paths []string

	for key, entry := range vfs.index.files {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}

		if !recursive && strings.ContainsRune(rest, '/') {
			continue
		}

		paths = append(paths, entry.path)
	}

	slices.Sort(paths)

	return paths
}

// ListFilesExt is [FS.ListFiles] restricted to files with the given
// extension. The extension is matched case-insensitively and may be given
// with or without its leading dot. An extension that is empty or contains a
// path separator is rejected with [ErrInvalidArgument]. The filter applies
// after the recursive or non-recursive selection.
func (vfs *FS) ListFilesExt(folder string, recursive bool, ext string) ([]string, error) {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" || strings.ContainsAny(ext, `/\`) {
		return nil, fmt.Errorf("extension filter %q: %w", ext, ErrInvalidArgument)
	}

	suffix := "." + foldPath(ext)

	var paths []string

	for _, path := range vfs.ListFiles(folder, recursive) {
		if strings.HasSuffix(foldPath(path), suffix) {
			paths = append(paths, path)
		}
	}

	return paths, nil
}

// ListFolders returns the virtual folder paths contained in folder, each
// with its trailing slash, sorted. Non-recursive listing returns only
// direct children, that is folders with exactly one more path segment than
// the parent. Recursive listing returns every folder below the parent,
// excluding the parent itself.
func (vfs *FS) ListFolders(folder string, recursive bool) []string {
	prefix := folderPrefix(folder)

	var paths []string

	for key, display := range vfs.index.folders {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok || rest == "" {
			continue
		}

		if !recursive && strings.Count(rest, "/") != 1 {
			continue
		}

		paths = append(paths, display)
	}

	slices.Sort(paths)

	return paths
}

// ListAllFiles returns every registered virtual file path, sorted.
func (vfs *FS) ListAllFiles() []string {
	paths := make([]string, 0, len(vfs.index.files))
	for _, entry := range vfs.index.files {
		paths = append(paths, entry.path)
	}

	slices.Sort(paths)

	return paths
}

// ListAllFolders returns every registered virtual folder path, each with
// its trailing slash, sorted.
func (vfs *FS) ListAllFolders() []string {
	paths := make([]string, 0, len(vfs.index.folders))
	for _, display := range vfs.index.folders {
		paths = append(paths, display)
	}

	slices.Sort(paths)

	return paths
}
