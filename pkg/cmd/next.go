// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bborbe/errors"

	"github.com/bborbe/calver-auto-release/pkg/status"
)

//counterfeiter:generate -o ../../mocks/next-command.go --fake-name NextCommand . NextCommand

// NextCommand executes the next subcommand.
type NextCommand interface {
	Run(ctx context.Context, jsonOutput bool) error
}

// nextCommand implements NextCommand.
type nextCommand struct {
	checker   status.Checker
	formatter status.Formatter
	out       io.Writer
}

// NewNextCommand creates a new NextCommand printing to out.
func NewNextCommand(checker status.Checker, formatter status.Formatter, out io.Writer) NextCommand {
	return &nextCommand{
		checker:   checker,
		formatter: formatter,
		out:       out,
	}
}

// Run prints the release plan without touching the repository.
func (n *nextCommand) Run(ctx context.Context, jsonOutput bool) error {
	st, err := n.checker.GetStatus(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, "get status")
	}

	if jsonOutput {
		return n.outputJSON(ctx, st)
	}
	return n.outputHuman(ctx, st)
}

// outputJSON outputs status as JSON.
func (n *nextCommand) outputJSON(ctx context.Context, st *status.Status) error {
	encoder := json.NewEncoder(n.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(st); err != nil {
		return errors.Wrap(ctx, err, "encode status")
	}
	return nil
}

// outputHuman outputs status in human-readable format.
func (n *nextCommand) outputHuman(ctx context.Context, st *status.Status) error {
	if _, err := fmt.Fprint(n.out, n.formatter.Format(st)); err != nil {
		return errors.Wrap(ctx, err, "write status")
	}
	return nil
}
