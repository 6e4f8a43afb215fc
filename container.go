// SPDX-FileCopyrightText: 2026 The pakfs Authors
//
// SPDX-License-Identifier: MIT

package pakfs

import (
	"archive/zip"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// MountOption configures a single [FS.AddRootContainer] call.
type MountOption func(*mountConfig)

type mountConfig struct {
	key []byte
}

// WithPassword supplies the password an archive container was packed with.
// Every entry of the archive is then decoded with the derived key on read.
// Mounting with a wrong password yields garbage bytes, not an error. The
// option is ignored for directory containers.
func WithPassword(password string) MountOption {
	return func(cfg *mountConfig) {
		cfg.key = DeriveKey(password)
	}
}

// AddRootContainer mounts a container on top of everything mounted before.
// A path naming an existing directory is walked recursively; a path naming
// an existing regular file is opened as a zip archive and held open until
// [FS.Close]. Files with equal virtual paths override earlier containers,
// so the order of AddRootContainer calls is the priority order.
//
// It returns [ErrInvalidArgument] if the path names neither, and
// [ErrInvalidContainer] if the file is not a parsable archive.
func (vfs *FS) AddRootContainer(path string, opts ...MountOption) error {
	if vfs.closed {
		return &PathError{Op: "mount", Path: path, Err: ErrClosed}
	}

	var cfg mountConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	info, err := vfs.fsys.Stat(path)

	switch {
	case err != nil:
		return &PathError{
			Op:   "mount",
			Path: path,
			Err:  fmt.Errorf("%w: %w", ErrInvalidArgument, err),
		}
	case info.IsDir():
		return vfs.mountDirectory(path)
	case info.Mode().IsRegular():
		return vfs.mountArchive(path, cfg.key)
	default:
		return &PathError{Op: "mount", Path: path, Err: ErrInvalidArgument}
	}
}

// mountDirectory ingests a directory container. Every file below root is
// registered as a disk handle and every subdirectory, including empty ones,
// as a virtual folder, with paths relative to the container root.
func (vfs *FS) mountDirectory(root string) error {
	var files, folders int

	err := afero.Walk(vfs.fsys, root, func(
		path string,
		info os.FileInfo,
		err error,
	) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if rel == "." {
			return nil
		}

		virtual := Normalize(filepath.ToSlash(rel))

		if info.IsDir() {
			vfs.index.addFolder(virtual)
			folders++

			return nil
		}

		vfs.index.setFile(virtual, diskFile{fsys: vfs.fsys, path: path})
		files++

		return nil
	})
	if err != nil {
		return fmt.Errorf("walk container %s: %w", root, err)
	}

	slog.Debug("mounted directory container",
		"root", root,
		"files", files,
		"folders", folders,
	)

	return nil
}

// mountArchive ingests an archive container. The archive file is kept open
// for the lifetime of the FS since entry handles read from it lazily.
// Entries ending in a slash are folder markers; all other entries are files
// whose ancestor folders are derived from the entry path.
func (vfs *FS) mountArchive(path string, key []byte) error {
	file, err := vfs.fsys.Open(path)
	if err != nil {
		return fmt.Errorf("open container: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("stat container: %w", err)
	}

	reader, err := zip.NewReader(file, info.Size())
	if err != nil {
		_ = file.Close()

		return &PathError{
			Op:   "mount",
			Path: path,
			Err:  fmt.Errorf("%w: %w", ErrInvalidContainer, err),
		}
	}

	vfs.resources = append(vfs.resources, file)

	for _, entry := range reader.File {
		virtual := Normalize(entry.Name)
		if virtual == "" {
			continue
		}

		if strings.HasSuffix(entry.Name, "/") {
			vfs.index.addFolder(virtual)
			continue
		}

		var h handle = archiveEntry{file: entry}
		if len(key) > 0 {
			h = obfuscatedEntry{file: entry, key: key}
		}

		vfs.index.setFile(virtual, h)
	}

	slog.Debug("mounted archive container",
		"path", path,
		"entries", len(reader.File),
		"obfuscated", len(key) > 0,
	)

	return nil
}
