// SPDX-FileCopyrightText: 2026 The pakfs Authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/modmount/pakfs"
	"github.com/spf13/cobra"
)

// mountAll builds an overlay from the given containers in priority order.
// The password, if any, applies to every archive container.
func mountAll(containers []string, password string) (*pakfs.FS, error) {
	var opts []pakfs.MountOption
	if password != "" {
		opts = append(opts, pakfs.WithPassword(password))
	}

	vfs := pakfs.New()

	for _, container := range containers {
		if err := vfs.AddRootContainer(container, opts...); err != nil {
			_ = vfs.Close()
			return nil, err
		}
	}

	return vfs, nil
}

func newListCommand() *cobra.Command {
	var (
		containers []string
		password   string
		recursive  bool
		folders    bool
	)

	cmd := &cobra.Command{
		Use:   "ls [FOLDER]",
		Short: "List virtual paths visible after mounting containers in order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var folder string
			if len(args) == 1 {
				folder = args[0]
			}

			vfs, err := mountAll(containers, password)
			if err != nil {
				return err
			}
			defer vfs.Close()

			paths := vfs.ListFiles(folder, recursive)
			if folders {
				paths = vfs.ListFolders(folder, recursive)
			}

			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&containers, "container", "C", nil,
		"container to mount, lowest priority first (repeatable)")
	cmd.Flags().StringVarP(&password, "password", "p", "",
		"password for obfuscated archive containers")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false,
		"descend into subfolders")
	cmd.Flags().BoolVar(&folders, "folders", false,
		"list folders instead of files")

	_ = cmd.MarkFlagRequired("container")

	return cmd
}

func newCatCommand() *cobra.Command {
	var (
		containers []string
		password   string
	)

	cmd := &cobra.Command{
		Use:   "cat PATH",
		Short: "Write a virtual file to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vfs, err := mountAll(containers, password)
			if err != nil {
				return err
			}
			defer vfs.Close()

			rc, err := vfs.Open(args[0])
			if err != nil {
				return err
			}
			defer rc.Close()

			_, err = io.Copy(cmd.OutOrStdout(), rc)

			return err
		},
	}

	cmd.Flags().StringArrayVarP(&containers, "container", "C", nil,
		"container to mount, lowest priority first (repeatable)")
	cmd.Flags().StringVarP(&password, "password", "p", "",
		"password for obfuscated archive containers")

	_ = cmd.MarkFlagRequired("container")

	return cmd
}
