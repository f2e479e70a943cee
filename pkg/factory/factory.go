// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"context"
	"io"
	"time"

	"github.com/bborbe/errors"
	libtime "github.com/bborbe/time"

	"github.com/bborbe/calver-auto-release/pkg/calver"
	"github.com/bborbe/calver-auto-release/pkg/cmd"
	"github.com/bborbe/calver-auto-release/pkg/config"
	"github.com/bborbe/calver-auto-release/pkg/git"
	"github.com/bborbe/calver-auto-release/pkg/github"
	"github.com/bborbe/calver-auto-release/pkg/lock"
	"github.com/bborbe/calver-auto-release/pkg/notes"
	"github.com/bborbe/calver-auto-release/pkg/output"
	"github.com/bborbe/calver-auto-release/pkg/processor"
	"github.com/bborbe/calver-auto-release/pkg/releaser"
	"github.com/bborbe/calver-auto-release/pkg/runner"
	"github.com/bborbe/calver-auto-release/pkg/server"
	"github.com/bborbe/calver-auto-release/pkg/status"
	"github.com/bborbe/calver-auto-release/pkg/watcher"
)

// RescanInterval is how often the daemon re-checks HEAD without a file system event.
const RescanInterval = time.Minute

// CreateChecker creates a Checker for the repository of cfg.
func CreateChecker(cfg config.Config) status.Checker {
	return status.NewChecker(
		git.NewRepository(cfg.RepoPath),
		calver.NewScanner(),
		calver.NewDecider(cfg.EffectiveSkipPatterns()),
		libtime.NewCurrentDateTime(),
	)
}

// CreatePublisher creates a GitHub Publisher, nil if publishing is disabled.
func CreatePublisher(ctx context.Context, cfg config.Config) (github.Publisher, error) {
	if !cfg.Publish {
		return nil, nil
	}
	publisher, err := github.NewPublisher(
		ctx,
		github.NewClient(cfg.GitHubToken),
		cfg.GitHubRepository,
	)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "create publisher")
	}
	return publisher, nil
}

// CreateReleaser creates a Releaser with all side effects configured by cfg.
func CreateReleaser(ctx context.Context, cfg config.Config) (releaser.Releaser, error) {
	publisher, err := CreatePublisher(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return releaser.NewReleaser(
		lock.NewLocker(git.GitDir(cfg.RepoPath), lock.FileName),
		CreateChecker(cfg),
		notes.NewFormatter(cfg.Footer),
		git.NewRepository(cfg.RepoPath),
		git.NewTagPusher(cfg.RepoPath),
		publisher,
		output.NewWriter(cfg.GitHubOutput),
		releaser.Options{
			Remote: cfg.Remote,
			Push:   cfg.Push,
			DryRun: cfg.DryRun,
		},
	), nil
}

// CreateReleaseCommand creates the default release command.
func CreateReleaseCommand(ctx context.Context, cfg config.Config, out io.Writer) (cmd.ReleaseCommand, error) {
	r, err := CreateReleaser(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return cmd.NewReleaseCommand(r, out), nil
}

// CreateNextCommand creates the next command.
func CreateNextCommand(cfg config.Config, out io.Writer) cmd.NextCommand {
	return cmd.NewNextCommand(CreateChecker(cfg), status.NewFormatter(), out)
}

// CreateServer creates the HTTP server, nil if no listen address is configured.
func CreateServer(cfg config.Config) server.Server {
	if cfg.Listen == "" {
		return nil
	}
	return server.NewServer(cfg.Listen, CreateChecker(cfg))
}

// CreateRunner creates the watch daemon.
func CreateRunner(ctx context.Context, cfg config.Config) (runner.Runner, error) {
	r, err := CreateReleaser(ctx, cfg)
	if err != nil {
		return nil, err
	}
	gitDir := git.GitDir(cfg.RepoPath)
	ready := make(chan struct{}, 1)
	return runner.NewRunner(
		lock.NewLocker(gitDir, lock.WatchFileName),
		watcher.NewWatcher(gitDir, ready, time.Duration(cfg.DebounceMs)*time.Millisecond),
		processor.NewProcessor(r, ready, RescanInterval),
		CreateServer(cfg),
	), nil
}
