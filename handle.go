// SPDX-FileCopyrightText: 2026 The pakfs Authors
//
// SPDX-License-Identifier: MIT

package pakfs

import (
	"archive/zip"
	"bytes"
	"io"

	"github.com/spf13/afero"
)

// handle identifies the single physical source that produces the bytes for
// a virtual path. Resolution is lazy: a handle holds a reference to its
// source and opens the byte stream on demand.
type handle interface {
	open() (io.ReadCloser, error)
}

var (
	_ handle = diskFile{}
	_ handle = archiveEntry{}
	_ handle = obfuscatedEntry{}
)

// diskFile reads a file of a directory container from the underlying
// filesystem.
type diskFile struct {
	fsys afero.Fs
	path string
}

func (h diskFile) open() (io.ReadCloser, error) {
	return h.fsys.Open(h.path)
}

// archiveEntry reads an entry of an archive container. The archive is held
// open by the [FS] that mounted it, so the handle stays valid until the FS
// is closed.
type archiveEntry struct {
	file *zip.File
}

func (h archiveEntry) open() (io.ReadCloser, error) {
	return h.file.Open()
}

// obfuscatedEntry reads an archive entry that was packed with a password.
// The entry is decoded eagerly on open, so the returned stream presents
// plain bytes.
type obfuscatedEntry struct {
	file *zip.File
	key  []byte
}

func (h obfuscatedEntry) open() (io.ReadCloser, error) {
	rc, err := h.file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	return io.NopCloser(bytes.NewReader(Transform(data, h.key))), nil
}
