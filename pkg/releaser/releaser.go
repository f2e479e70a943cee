// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package releaser

import (
	"context"
	"log"

	"github.com/bborbe/errors"

	"github.com/bborbe/calver-auto-release/pkg/git"
	"github.com/bborbe/calver-auto-release/pkg/github"
	"github.com/bborbe/calver-auto-release/pkg/lock"
	"github.com/bborbe/calver-auto-release/pkg/notes"
	"github.com/bborbe/calver-auto-release/pkg/output"
	"github.com/bborbe/calver-auto-release/pkg/status"
)

// Result describes the outcome of one release run.
type Result struct {
	Version string
	Notes   string
	Skipped bool
	Reason  string
	DryRun  bool
}

// Created returns true if the run created a tag.
func (r *Result) Created() bool {
	return !r.Skipped && !r.DryRun
}

// Releaser runs one release: decide, tag, push, publish and report the version.
//
//counterfeiter:generate -o ../../mocks/releaser.go --fake-name Releaser . Releaser
type Releaser interface {
	Release(ctx context.Context) (*Result, error)
}

// Options control the side effects of a release run.
type Options struct {
	Remote string
	Push   bool
	DryRun bool
}

// releaser implements Releaser.
type releaser struct {
	locker         lock.Locker
	checker        status.Checker
	notesFormatter notes.Formatter
	repository     git.Repository
	tagPusher      git.TagPusher
	publisher      github.Publisher
	outputWriter   output.Writer
	options        Options
}

// NewReleaser creates a new Releaser. A nil publisher disables GitHub releases.
func NewReleaser(
	locker lock.Locker,
	checker status.Checker,
	notesFormatter notes.Formatter,
	repository git.Repository,
	tagPusher git.TagPusher,
	publisher github.Publisher,
	outputWriter output.Writer,
	options Options,
) Releaser {
	return &releaser{
		locker:         locker,
		checker:        checker,
		notesFormatter: notesFormatter,
		repository:     repository,
		tagPusher:      tagPusher,
		publisher:      publisher,
		outputWriter:   outputWriter,
		options:        options,
	}
}

// Release creates the next version tag unless the decision is to skip.
func (r *releaser) Release(ctx context.Context) (*Result, error) {
	if !r.options.DryRun {
		if err := r.locker.Acquire(ctx); err != nil {
			return nil, errors.Wrap(ctx, err, "acquire lock")
		}
		defer func() {
			if err := r.locker.Release(ctx); err != nil {
				log.Printf("calver-auto-release: release lock failed: %v", err)
			}
		}()
	}

	st, err := r.checker.GetStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "get status")
	}

	switch st.Decision {
	case status.DecisionAlreadyTagged:
		log.Printf("calver-auto-release: current commit is already tagged")
		return &Result{Skipped: true, Reason: st.Reason, DryRun: r.options.DryRun}, nil
	case status.DecisionSkip:
		log.Printf("calver-auto-release: skipping release due to commit message (%s)", st.Reason)
		return &Result{Skipped: true, Reason: st.Reason, DryRun: r.options.DryRun}, nil
	case status.DecisionRelease:
	default:
		return nil, errors.Errorf(ctx, "unknown decision '%s'", st.Decision)
	}

	result := &Result{
		Version: st.NextVersion,
		Notes:   r.notesFormatter.Notes(st.NextVersion, st.Changes),
		DryRun:  r.options.DryRun,
	}
	if r.options.DryRun {
		log.Printf("calver-auto-release: dry-run, would create tag %s", result.Version)
		return result, nil
	}

	if err := r.repository.CreateTag(ctx, result.Version, r.notesFormatter.TagMessage(result.Version, result.Notes)); err != nil {
		return nil, errors.Wrapf(ctx, err, "create tag %s", result.Version)
	}
	log.Printf("calver-auto-release: created tag %s", result.Version)

	if r.options.Push {
		if err := r.tagPusher.Push(ctx, r.options.Remote, result.Version); err != nil {
			return nil, errors.Wrapf(ctx, err, "push tag %s", result.Version)
		}
		log.Printf("calver-auto-release: pushed tag %s to %s", result.Version, r.options.Remote)
	}

	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, result.Version, result.Notes); err != nil {
			return nil, errors.Wrapf(ctx, err, "publish release %s", result.Version)
		}
	}

	if err := r.outputWriter.WriteVersion(ctx, result.Version); err != nil {
		return nil, errors.Wrap(ctx, err, "write output")
	}

	return result, nil
}
