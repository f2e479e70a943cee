// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/bborbe/errors"

	"github.com/bborbe/calver-auto-release/pkg/releaser"
)

//counterfeiter:generate -o ../../mocks/release-command.go --fake-name ReleaseCommand . ReleaseCommand

// ReleaseCommand executes the default release command.
type ReleaseCommand interface {
	Run(ctx context.Context) error
}

// releaseCommand implements ReleaseCommand.
type releaseCommand struct {
	releaser releaser.Releaser
	out      io.Writer
}

// NewReleaseCommand creates a new ReleaseCommand printing the created tag to out.
func NewReleaseCommand(releaser releaser.Releaser, out io.Writer) ReleaseCommand {
	return &releaseCommand{
		releaser: releaser,
		out:      out,
	}
}

// Run releases once. A skipped release is logged and is not an error.
func (r *releaseCommand) Run(ctx context.Context) error {
	result, err := r.releaser.Release(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, "release")
	}

	var line string
	switch {
	case result.Skipped:
		log.Printf("calver-auto-release: skipping release: %s", result.Reason)
		return nil
	case result.DryRun:
		line = fmt.Sprintf("Would create new tag: %s", result.Version)
	default:
		line = fmt.Sprintf("Created new tag: %s", result.Version)
	}
	if _, err := fmt.Fprintln(r.out, line); err != nil {
		return errors.Wrap(ctx, err, "write result")
	}
	return nil
}
