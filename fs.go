// SPDX-FileCopyrightText: 2026 The pakfs Authors
//
// SPDX-License-Identifier: MIT

package pakfs

import (
	"errors"
	"io"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
)

// FS is a read-only overlay filesystem assembled from an ordered list of
// root containers. It owns the overlay index and keeps every mounted
// archive open so entry handles stay resolvable.
//
// An FS is used in two phases: first mount all containers with
// [FS.AddRootContainer], then query. Mounting is not safe for concurrent
// use. Once population is finished the index is effectively immutable and
// read-only queries may be shared across goroutines without locking.
type FS struct {
	fsys      afero.Fs
	index     *overlayIndex
	resources []io.Closer
	closed    bool
}

// Option configures a new [FS].
type Option func(*FS)

// WithBaseFS sets the filesystem that container paths are resolved against
// and disk handles read from. The default is the host filesystem.
func WithBaseFS(fsys afero.Fs) Option {
	return func(vfs *FS) {
		vfs.fsys = fsys
	}
}

// New creates an empty [FS].
func New(opts ...Option) *FS {
	vfs := &FS{
		fsys:  afero.NewOsFs(),
		index: newOverlayIndex(),
	}

	for _, opt := range opts {
		opt(vfs)
	}

	return vfs
}

// Close releases every archive resource held by the FS. It is idempotent:
// calling it again returns nil and does nothing.
//
// Handles pointing into a released archive become invalid. Reading through
// one after Close is a programming error, not a guarded condition; it fails
// with whatever error the underlying archive reader produces.
func (vfs *FS) Close() error {
	if vfs.closed {
		return nil
	}

	vfs.closed = true

	var errs []error

	for _, resource := range vfs.resources {
		if err := resource.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	vfs.resources = nil

	return errors.Join(errs...)
}

// FileExists reports whether path is a registered virtual file. It never
// fails, regardless of input.
func (vfs *FS) FileExists(path string) bool {
	_, exists := vfs.index.files[foldPath(Normalize(path))]
	return exists
}

// FolderExists reports whether path is a registered virtual folder. A
// folder exists as soon as any container contributes a file below it, even
// if no container declared it explicitly. The root always exists. It never
// fails, regardless of input.
func (vfs *FS) FolderExists(path string) bool {
	norm := Normalize(path)
	if norm == "" {
		return true
	}

	_, exists := vfs.index.folders[foldPath(norm)+"/"]

	return exists
}

// Open resolves path and opens a reader for its current content. For
// obfuscated archive entries the stream presents already-decoded bytes.
//
// It returns a [PathError] wrapping [ErrNotExist] if the path is not
// registered.
func (vfs *FS) Open(path string) (io.ReadCloser, error) {
	norm := Normalize(path)

	entry, exists := vfs.index.files[foldPath(norm)]
	if !exists {
		return nil, &PathError{
			Op:   "open",
			Path: norm,
			Err:  ErrNotExist,
		}
	}

	return entry.handle.open()
}

// ReadFile resolves path and returns its full content. It is equivalent to
// draining [FS.Open].
func (vfs *FS) ReadFile(path string) ([]byte, error) {
	rc, err := vfs.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// ReadText resolves path and decodes its content with enc. A nil encoding
// returns the raw bytes as a string, which is the UTF-8 passthrough. No
// encoding detection is performed.
func (vfs *FS) ReadText(path string, enc encoding.Encoding) (string, error) {
	data, err := vfs.ReadFile(path)
	if err != nil {
		return "", err
	}

	if enc == nil {
		return string(data), nil
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}
