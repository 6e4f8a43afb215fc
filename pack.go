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

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"
)

// PackOption configures a [PackFolder] call.
type PackOption func(*packConfig)

type packConfig struct {
	fsys     afero.Fs
	key      []byte
	patterns []string
}

// PackPassword obfuscates every packed file with the key derived from
// password. Reading the archive back requires mounting it with the same
// password, see [WithPassword].
func PackPassword(password string) PackOption {
	return func(cfg *packConfig) {
		cfg.key = DeriveKey(password)
	}
}

// PackExclude skips files matching the given gitignore-style patterns. The
// patterns are matched against the slash-separated path relative to the
// source directory.
func PackExclude(patterns ...string) PackOption {
	return func(cfg *packConfig) {
		cfg.patterns = append(cfg.patterns, patterns...)
	}
}

// PackFS sets the filesystem the source tree is read from and the archive
// is written to. The default is the host filesystem.
func PackFS(fsys afero.Fs) PackOption {
	return func(cfg *packConfig) {
		cfg.fsys = fsys
	}
}

// PackFolder writes every file below sourceDir into a new zip archive at
// archivePath, one store-only entry per slash-separated relative file path.
// Store-only compression keeps entries uniformly seekable for random
// access. An existing file at archivePath is overwritten.
//
// The result is the container format [FS.AddRootContainer] mounts. No
// directory marker entries are written, so empty directories do not survive
// a pack and mount round trip.
//
// It returns an error wrapping [ErrNotExist] if sourceDir does not exist
// and [ErrInvalidArgument] if it is not a directory.
func PackFolder(sourceDir, archivePath string, opts ...PackOption) error {
	cfg := packConfig{fsys: afero.NewOsFs()}
	for _, opt := range opts {
		opt(&cfg)
	}

	info, err := cfg.fsys.Stat(sourceDir)
	if err != nil {
		return fmt.Errorf("pack %s: %w", sourceDir, err)
	}

	if !info.IsDir() {
		return &PathError{Op: "pack", Path: sourceDir, Err: ErrInvalidArgument}
	}

	var excluded *ignore.GitIgnore
	if len(cfg.patterns) > 0 {
		excluded = ignore.CompileIgnoreLines(cfg.patterns...)
	}

	out, err := cfg.fsys.Create(archivePath)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer out.Close()

	writer := zip.NewWriter(out)

	var count int

	err = afero.Walk(cfg.fsys, sourceDir, func(
		path string,
		info os.FileInfo,
		err error,
	) error {
		if err != nil || info.IsDir() {
			return err
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}

		name := filepath.ToSlash(rel)
		if excluded != nil && excluded.MatchesPath(name) {
			return nil
		}

		data, err := afero.ReadFile(cfg.fsys, path)
		if err != nil {
			return err
		}

		if len(cfg.key) > 0 {
			data = Transform(data, cfg.key)
		}

		entry, err := writer.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Store,
			Modified: info.ModTime(),
		})
		if err != nil {
			return err
		}

		_, err = entry.Write(data)
		count++

		return err
	})
	if err != nil {
		_ = writer.Close()
		return fmt.Errorf("pack %s: %w", sourceDir, err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("finish archive: %w", err)
	}

	slog.Debug("packed folder",
		"source", sourceDir,
		"archive", archivePath,
		"files", count,
		"obfuscated", len(cfg.key) > 0,
	)

	return out.Close()
}
