// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"path/filepath"

	"github.com/bborbe/errors"
	"github.com/bborbe/validation"

	"github.com/bborbe/calver-auto-release/pkg/calver"
	"github.com/bborbe/calver-auto-release/pkg/notes"
)

// FileName is the config file looked up in the repository root.
const FileName = ".calver-auto-release.yaml"

// Config holds the calver-auto-release configuration.
type Config struct {
	RepoPath          string   `yaml:"-"`
	SkipPatterns      []string `yaml:"skipPatterns"`
	ExtraSkipPatterns []string `yaml:"extraSkipPatterns"`
	Footer            string   `yaml:"footer"`
	DryRun            bool     `yaml:"-"`
	Remote            string   `yaml:"remote"`
	Push              bool     `yaml:"push"`
	Publish           bool     `yaml:"publish"`
	GitHubToken       string   `yaml:"-"`
	GitHubRepository  string   `yaml:"githubRepository"`
	GitHubOutput      string   `yaml:"-"`
	Listen            string   `yaml:"listen"`
	DebounceMs        int      `yaml:"debounceMs"`
}

// Defaults returns a Config with all default values.
func Defaults() Config {
	return Config{
		RepoPath:     ".",
		SkipPatterns: append([]string{}, calver.DefaultSkipPatterns...),
		Footer:       notes.DefaultFooter,
		Remote:       "origin",
		Push:         true,
		DebounceMs:   500,
	}
}

// EffectiveSkipPatterns returns the configured patterns extended by the extra ones.
// An empty replacement set falls back to the defaults.
func (c Config) EffectiveSkipPatterns() calver.SkipPatterns {
	patterns := calver.SkipPatterns(c.SkipPatterns)
	if len(patterns.With()) == 0 {
		patterns = calver.DefaultSkipPatterns
	}
	return patterns.With(c.ExtraSkipPatterns...)
}

// ConfigPath returns the default config file location of the repository.
func (c Config) ConfigPath() string {
	return filepath.Join(c.RepoPath, FileName)
}

// Validate validates the config fields.
func (c Config) Validate(ctx context.Context) error {
	return validation.All{
		validation.Name("repoPath", validation.NotEmptyString(c.RepoPath)),
		validation.Name("remote", validation.NotEmptyString(c.Remote)),
		validation.Name("publish", validation.HasValidationFunc(func(ctx context.Context) error {
			if !c.Publish {
				return nil
			}
			if c.GitHubToken == "" {
				return errors.Errorf(ctx, "publish requires a github token")
			}
			if c.GitHubRepository == "" {
				return errors.Errorf(ctx, "publish requires a github repository")
			}
			if !c.Push {
				return errors.Errorf(ctx, "publish requires push")
			}
			return nil
		})),
		validation.Name("debounceMs", validation.HasValidationFunc(func(ctx context.Context) error {
			if c.DebounceMs <= 0 {
				return errors.Errorf(ctx, "debounceMs must be positive, got %d", c.DebounceMs)
			}
			return nil
		})),
	}.Validate(ctx)
}
