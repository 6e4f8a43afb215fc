// SPDX-FileCopyrightText: 2026 The pakfs Authors
//
// SPDX-License-Identifier: MIT

package pakfs

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned if a virtual path that is read is not
	// present in the index.
	ErrNotExist = fs.ErrNotExist

	// ErrClosed is returned if a container is added to an [FS] whose
	// resources have already been released.
	ErrClosed = fs.ErrClosed

	// ErrInvalidArgument is returned if an argument is invalid, such as a
	// container path that names neither an existing file nor an existing
	// directory.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidContainer is returned if an archive container cannot be
	// parsed. It is distinct from the I/O error of failing to open the
	// container in the first place.
	ErrInvalidContainer = errors.New("invalid container data")
)

// PathError records an error and the operation and path that caused it.
type PathError = fs.PathError
