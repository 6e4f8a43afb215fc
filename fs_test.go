// SPDX-FileCopyrightText: 2026 The pakfs Authors
//
// SPDX-License-Identifier: MIT

package pakfs_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/modmount/pakfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/charmap"
)

// newMemFs creates an in-memory filesystem populated with the given files.
// Parent directories are created implicitly.
func newMemFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()

	for path, content := range files {
		err := afero.WriteFile(fsys, path, []byte(content), 0o644)
		require.NoError(t, err)
	}

	return fsys
}

// newOverlay creates an FS over fsys and mounts the given containers in
// order. The FS is closed on test cleanup.
func newOverlay(t *testing.T, fsys afero.Fs, containers ...string) *pakfs.FS {
	t.Helper()

	vfs := pakfs.New(pakfs.WithBaseFS(fsys))
	t.Cleanup(func() { _ = vfs.Close() })

	for _, container := range containers {
		require.NoError(t, vfs.AddRootContainer(container))
	}

	return vfs
}

// writeZip writes a zip archive with the given entries to path. Entry names
// ending in a slash become directory markers.
func writeZip(t *testing.T, fsys afero.Fs, path string, entries map[string]string) {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	for name, content := range entries {
		if name[len(name)-1] == '/' {
			_, err := writer.CreateHeader(&zip.FileHeader{Name: name})
			require.NoError(t, err)

			continue
		}

		entry, err := writer.Create(name)
		require.NoError(t, err)

		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	require.NoError(t, afero.WriteFile(fsys, path, buf.Bytes(), 0o644))
}

func TestFS_Override(t *testing.T) {
	fsys := newMemFs(t, map[string]string{
		"base/data/menu.txt":  "base menu",
		"base/data/intro.txt": "base intro",
		"mod/Data/Menu.TXT":   "modded menu",
	})

	vfs := newOverlay(t, fsys, "base", "mod")

	content, err := vfs.ReadFile("data/menu.txt")
	require.NoError(t, err)
	assert.Equal(t, "modded menu", string(content))

	content, err = vfs.ReadFile("data/intro.txt")
	require.NoError(t, err)
	assert.Equal(t, "base intro", string(content))

	// Display path keeps the spelling of the last writer.
	assert.Contains(t, vfs.ListAllFiles(), "Data/Menu.TXT")
}

func TestFS_Override_OrderIsCallOrder(t *testing.T) {
	fsys := newMemFs(t, map[string]string{
		"base/data/menu.txt": "base menu",
		"mod/data/menu.txt":  "modded menu",
	})

	vfs := newOverlay(t, fsys, "mod", "base")

	content, err := vfs.ReadFile("data/menu.txt")
	require.NoError(t, err)
	assert.Equal(t, "base menu", string(content))
}

func TestFS_FileExists(t *testing.T) {
	fsys := newMemFs(t, map[string]string{
		"base/Some/Path/File.txt": "content",
	})

	vfs := newOverlay(t, fsys, "base")

	assert.True(t, vfs.FileExists("Some/Path/File.txt"))
	assert.True(t, vfs.FileExists("some/path/file.txt"))
	assert.True(t, vfs.FileExists(`Some\Path\File.txt`))
	assert.True(t, vfs.FileExists("/some/path/file.txt"))
	assert.False(t, vfs.FileExists("some/path"))
	assert.False(t, vfs.FileExists("missing.txt"))
	assert.False(t, vfs.FileExists(""))
}

func TestFS_FolderExists(t *testing.T) {
	fsys := newMemFs(t, map[string]string{
		"base/a/b/c.txt": "content",
	})

	require.NoError(t, fsys.MkdirAll("base/empty", 0o755))

	vfs := newOverlay(t, fsys, "base")

	// Derived purely from the file path, never declared explicitly.
	assert.True(t, vfs.FolderExists("a"))
	assert.True(t, vfs.FolderExists("a/b"))
	assert.True(t, vfs.FolderExists("A/B/"))
	assert.True(t, vfs.FolderExists(`a\b`))

	// Empty directories of a directory container are registered.
	assert.True(t, vfs.FolderExists("empty"))

	// The root always exists, with or without a slash.
	assert.True(t, vfs.FolderExists(""))
	assert.True(t, vfs.FolderExists("/"))

	assert.False(t, vfs.FolderExists("a/b/c.txt"))
	assert.False(t, vfs.FolderExists("missing"))
}

func TestFS_Open_NotExist(t *testing.T) {
	vfs := newOverlay(t, afero.NewMemMapFs())

	_, err := vfs.Open("missing/file.txt")
	require.ErrorIs(t, err, pakfs.ErrNotExist)

	var pathErr *pakfs.PathError

	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "missing/file.txt", pathErr.Path)
}

func TestFS_ReadText(t *testing.T) {
	fsys := afero.NewMemMapFs()

	latin1 := []byte{'c', 'a', 'f', 0xe9}
	require.NoError(t, afero.WriteFile(fsys, "base/caf.txt", latin1, 0o644))
	require.NoError(t, afero.WriteFile(fsys, "base/plain.txt", []byte("héllo"), 0o644))

	vfs := newOverlay(t, fsys, "base")

	text, err := vfs.ReadText("caf.txt", charmap.ISO8859_1)
	require.NoError(t, err)
	assert.Equal(t, "café", text)

	// nil encoding is the UTF-8 passthrough.
	text, err = vfs.ReadText("plain.txt", nil)
	require.NoError(t, err)
	assert.Equal(t, "héllo", text)

	_, err = vfs.ReadText("missing.txt", nil)
	assert.ErrorIs(t, err, pakfs.ErrNotExist)
}

func TestFS_AddRootContainer_Missing(t *testing.T) {
	vfs := newOverlay(t, afero.NewMemMapFs())

	err := vfs.AddRootContainer("does/not/exist")
	assert.ErrorIs(t, err, pakfs.ErrInvalidArgument)
}

func TestFS_AddRootContainer_InvalidArchive(t *testing.T) {
	fsys := newMemFs(t, map[string]string{
		"broken.zip": "this is not a zip archive",
	})

	vfs := newOverlay(t, fsys)

	err := vfs.AddRootContainer("broken.zip")
	assert.ErrorIs(t, err, pakfs.ErrInvalidContainer)
	assert.NotErrorIs(t, err, pakfs.ErrInvalidArgument)
}

func TestFS_ArchiveContainer(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeZip(t, fsys, "assets.zip", map[string]string{
		"textures/":         "",
		"textures/wood.png": "wood bytes",
		"maps/town/map.dat": "town map",
	})

	vfs := newOverlay(t, fsys, "assets.zip")

	content, err := vfs.ReadFile("textures/wood.png")
	require.NoError(t, err)
	assert.Equal(t, "wood bytes", string(content))

	// Declared by the directory marker entry.
	assert.True(t, vfs.FolderExists("textures"))

	// Derived from the file entry path alone.
	assert.True(t, vfs.FolderExists("maps"))
	assert.True(t, vfs.FolderExists("maps/town"))
}

func TestFS_Close(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeZip(t, fsys, "assets.zip", map[string]string{
		"file.txt": "archived",
	})

	vfs := pakfs.New(pakfs.WithBaseFS(fsys))
	require.NoError(t, vfs.AddRootContainer("assets.zip"))

	require.NoError(t, vfs.Close())
	require.NoError(t, vfs.Close())

	err := vfs.AddRootContainer("assets.zip")
	assert.ErrorIs(t, err, pakfs.ErrClosed)

	// The index still answers existence queries, but the handle points
	// into a released archive and must not return stale bytes.
	assert.True(t, vfs.FileExists("file.txt"))

	_, err = vfs.ReadFile("file.txt")
	assert.Error(t, err)
}

func TestFS_ConcurrentQueries(t *testing.T) {
	fsys := newMemFs(t, map[string]string{
		"base/data/a.txt": "alpha",
		"base/data/b.txt": "beta",
	})

	vfs := newOverlay(t, fsys, "base")

	// After population the index is immutable, so read-only queries may
	// be shared across goroutines.
	var group errgroup.Group

	for i := 0; i < 8; i++ {
		group.Go(func() error {
			content, err := vfs.ReadFile("data/a.txt")
			if err != nil {
				return err
			}

			if string(content) != "alpha" {
				return errors.New("unexpected content")
			}

			if !vfs.FolderExists("data") {
				return errors.New("folder vanished")
			}

			return nil
		})
	}

	require.NoError(t, group.Wait())
}
