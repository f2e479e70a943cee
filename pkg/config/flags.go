// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"

	"github.com/bborbe/errors"
	"github.com/spf13/pflag"
)

// Flag names shared by all commands.
const (
	FlagRepoPath         = "repo-path"
	FlagConfig           = "config"
	FlagSkipPattern      = "skip-pattern"
	FlagExtraSkipPattern = "extra-skip-pattern"
	FlagFooter           = "footer"
	FlagDryRun           = "dry-run"
	FlagRemote           = "remote"
	FlagNoPush           = "no-push"
	FlagPublish          = "publish"
	FlagGitHubToken      = "github-token"
	FlagGitHubRepository = "github-repository"
	FlagGitHubOutput     = "github-output"
	FlagListen           = "listen"
	FlagDebounceMs       = "debounce-ms"
)

// AddFlags registers the flags of a release run.
func AddFlags(flags *pflag.FlagSet) {
	defaults := Defaults()
	flags.String(FlagRepoPath, defaults.RepoPath, "path to the git repository")
	flags.String(FlagConfig, "", "config file (default <repo-path>/"+FileName+")")
	flags.StringArray(FlagSkipPattern, nil, "pattern in the commit message that skips the release, replaces the defaults (repeatable)")
	flags.StringArray(FlagExtraSkipPattern, nil, "pattern added to the skip patterns (repeatable)")
	flags.String(FlagFooter, defaults.Footer, "footer appended to the release notes")
	flags.Bool(FlagDryRun, false, "compute the version without creating a tag")
	flags.String(FlagRemote, defaults.Remote, "remote the tag is pushed to")
	flags.Bool(FlagNoPush, false, "create the tag locally without pushing it")
	flags.Bool(FlagPublish, false, "create a GitHub release for the pushed tag")
	flags.String(FlagGitHubToken, "", "GitHub token used for --publish")
	flags.String(FlagGitHubRepository, "", "GitHub repository owner/name used for --publish")
	flags.String(FlagGitHubOutput, "", "file the version output is appended to")
}

// AddWatchFlags registers the additional flags of the watch daemon.
func AddWatchFlags(flags *pflag.FlagSet) {
	defaults := Defaults()
	flags.String(FlagListen, defaults.Listen, "address of the status HTTP server, e.g. :8080")
	flags.Int(FlagDebounceMs, defaults.DebounceMs, "debounce of git directory events in milliseconds")
}

// MergeFlags copies every flag set on the command line onto cfg.
func MergeFlags(ctx context.Context, cfg *Config, flags *pflag.FlagSet) error {
	var err error
	changed := func(name string) bool {
		flag := flags.Lookup(name)
		return err == nil && flag != nil && flag.Changed
	}

	if changed(FlagRepoPath) {
		cfg.RepoPath, err = flags.GetString(FlagRepoPath)
	}
	if changed(FlagSkipPattern) {
		cfg.SkipPatterns, err = flags.GetStringArray(FlagSkipPattern)
	}
	if changed(FlagExtraSkipPattern) {
		var extra []string
		extra, err = flags.GetStringArray(FlagExtraSkipPattern)
		cfg.ExtraSkipPatterns = append(cfg.ExtraSkipPatterns, extra...)
	}
	if changed(FlagFooter) {
		cfg.Footer, err = flags.GetString(FlagFooter)
	}
	if changed(FlagDryRun) {
		cfg.DryRun, err = flags.GetBool(FlagDryRun)
	}
	if changed(FlagRemote) {
		cfg.Remote, err = flags.GetString(FlagRemote)
	}
	if changed(FlagNoPush) {
		var noPush bool
		noPush, err = flags.GetBool(FlagNoPush)
		cfg.Push = !noPush
	}
	if changed(FlagPublish) {
		cfg.Publish, err = flags.GetBool(FlagPublish)
	}
	if changed(FlagGitHubToken) {
		cfg.GitHubToken, err = flags.GetString(FlagGitHubToken)
	}
	if changed(FlagGitHubRepository) {
		cfg.GitHubRepository, err = flags.GetString(FlagGitHubRepository)
	}
	if changed(FlagGitHubOutput) {
		cfg.GitHubOutput, err = flags.GetString(FlagGitHubOutput)
	}
	if changed(FlagListen) {
		cfg.Listen, err = flags.GetString(FlagListen)
	}
	if changed(FlagDebounceMs) {
		cfg.DebounceMs, err = flags.GetInt(FlagDebounceMs)
	}
	if err != nil {
		return errors.Wrap(ctx, err, "read flag")
	}
	return nil
}
