// SPDX-FileCopyrightText: 2026 The pakfs Authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/modmount/pakfs"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newPackCommand() *cobra.Command {
	var (
		password string
		exclude  []string
	)

	cmd := &cobra.Command{
		Use:   "pack SRC=DEST [SRC=DEST...]",
		Short: "Pack directory trees into store-only zip containers",
		Long: "Pack writes each SRC directory tree into a zip container at " +
			"DEST, one store-only entry per file. With --password, file " +
			"contents are obfuscated with the derived key. Independent " +
			"pairs are packed concurrently.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var group errgroup.Group

			for _, arg := range args {
				src, dest, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("%w: %q is not of the form SRC=DEST",
						pakfs.ErrInvalidArgument, arg)
				}

				group.Go(func() error {
					var opts []pakfs.PackOption
					if password != "" {
						opts = append(opts, pakfs.PackPassword(password))
					}

					if len(exclude) > 0 {
						opts = append(opts, pakfs.PackExclude(exclude...))
					}

					return pakfs.PackFolder(src, dest, opts...)
				})
			}

			return group.Wait()
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "",
		"obfuscate packed files with this password")
	cmd.Flags().StringArrayVarP(&exclude, "exclude", "x", nil,
		"gitignore-style pattern to skip (repeatable)")

	return cmd
}
