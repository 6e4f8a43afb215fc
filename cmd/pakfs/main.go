// SPDX-FileCopyrightText: 2026 The pakfs Authors
//
// SPDX-License-Identifier: MIT

// Command pakfs builds and inspects layered mod package containers.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pakfs:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "pakfs",
		Short:         "Build and inspect layered mod package containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			setupLogging(os.Stderr, debug)
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false,
		"enable debug logging")

	root.AddCommand(
		newPackCommand(),
		newListCommand(),
		newCatCommand(),
	)

	return root
}

func setupLogging(writer io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(
		writer,
		&slog.HandlerOptions{
			Level: level,
		},
	)))
}
