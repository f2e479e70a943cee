// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bborbe/calver-auto-release/pkg/config"
	"github.com/bborbe/calver-auto-release/pkg/factory"
	"github.com/bborbe/calver-auto-release/pkg/version"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "calver-auto-release",
		Short:         "Create the next calendar version tag for a git repository",
		Version:       version.NewGetter(version.Version).Get(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.NewLoader(cmd.Flags()).Load(ctx)
			if err != nil {
				return err
			}
			releaseCommand, err := factory.CreateReleaseCommand(ctx, cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return releaseCommand.Run(ctx)
		},
	}
	config.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newNextCommand(), newWatchCommand())
	return rootCmd
}

func newNextCommand() *cobra.Command {
	var jsonOutput bool
	nextCmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next version without creating a tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.NewLoader(cmd.Flags()).Load(ctx)
			if err != nil {
				return err
			}
			return factory.CreateNextCommand(cfg, cmd.OutOrStdout()).Run(ctx, jsonOutput)
		},
	}
	nextCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the status as JSON")
	return nextCmd
}

func newWatchCommand() *cobra.Command {
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Release every new HEAD of the repository until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.NewLoader(cmd.Flags()).Load(ctx)
			if err != nil {
				return err
			}
			runner, err := factory.CreateRunner(ctx, cfg)
			if err != nil {
				return err
			}
			return runner.Run(ctx)
		},
	}
	config.AddWatchFlags(watchCmd.Flags())
	return watchCmd
}
