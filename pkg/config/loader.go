// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"os"
	"strings"

	"github.com/bborbe/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the Loader.
const (
	EnvSkipPatterns     = "CALVER_SKIP_PATTERNS"
	EnvFooter           = "CALVER_FOOTER"
	EnvDryRun           = "CALVER_DRY_RUN"
	EnvGitHubToken      = "GITHUB_TOKEN"
	EnvGitHubRepository = "GITHUB_REPOSITORY"
	EnvGitHubOutput     = "GITHUB_OUTPUT"
)

// Loader resolves the configuration from defaults, config file, environment and flags.
//
//counterfeiter:generate -o ../../mocks/config-loader.go --fake-name Loader . Loader
type Loader interface {
	Load(ctx context.Context) (Config, error)
}

// loader implements Loader.
type loader struct {
	flags     *pflag.FlagSet
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a Loader reading the given parsed flags and the process environment.
func NewLoader(flags *pflag.FlagSet) Loader {
	return &loader{
		flags:     flags,
		lookupEnv: os.LookupEnv,
	}
}

// partialConfig is used for YAML unmarshaling to distinguish between
// explicitly set zero values and missing fields.
type partialConfig struct {
	SkipPatterns      *[]string `yaml:"skipPatterns"`
	ExtraSkipPatterns *[]string `yaml:"extraSkipPatterns"`
	Footer            *string   `yaml:"footer"`
	Remote            *string   `yaml:"remote"`
	Push              *bool     `yaml:"push"`
	Publish           *bool     `yaml:"publish"`
	GitHubRepository  *string   `yaml:"githubRepository"`
	Listen            *string   `yaml:"listen"`
	DebounceMs        *int      `yaml:"debounceMs"`
}

// Load merges flags over environment over config file over defaults and validates the result.
func (l *loader) Load(ctx context.Context) (Config, error) {
	cfg := Defaults()
	if flag := l.flags.Lookup(FlagRepoPath); flag != nil && flag.Value.String() != "" {
		cfg.RepoPath = flag.Value.String()
	}

	configPath, explicit := cfg.ConfigPath(), false
	if flag := l.flags.Lookup(FlagConfig); flag != nil && flag.Changed {
		configPath, explicit = flag.Value.String(), true
	}
	if err := l.mergeFile(ctx, &cfg, configPath, explicit); err != nil {
		return Config{}, err
	}

	l.mergeEnv(&cfg)

	if err := MergeFlags(ctx, &cfg, l.flags); err != nil {
		return Config{}, errors.Wrap(ctx, err, "merge flags")
	}

	if err := cfg.Validate(ctx); err != nil {
		return Config{}, errors.Wrap(ctx, err, "validate config")
	}
	return cfg, nil
}

// mergeFile merges the YAML file at path onto cfg. A missing file is only an error if explicit.
func (l *loader) mergeFile(ctx context.Context, cfg *Config, path string, explicit bool) error {
	// #nosec G304 -- path is the repository config file or chosen by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return errors.Wrap(ctx, err, "read config file")
	}

	var partial partialConfig
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return errors.Wrap(ctx, err, "parse config file")
	}

	if partial.SkipPatterns != nil {
		cfg.SkipPatterns = *partial.SkipPatterns
	}
	if partial.ExtraSkipPatterns != nil {
		cfg.ExtraSkipPatterns = *partial.ExtraSkipPatterns
	}
	if partial.Footer != nil {
		cfg.Footer = *partial.Footer
	}
	if partial.Remote != nil {
		cfg.Remote = *partial.Remote
	}
	if partial.Push != nil {
		cfg.Push = *partial.Push
	}
	if partial.Publish != nil {
		cfg.Publish = *partial.Publish
	}
	if partial.GitHubRepository != nil {
		cfg.GitHubRepository = *partial.GitHubRepository
	}
	if partial.Listen != nil {
		cfg.Listen = *partial.Listen
	}
	if partial.DebounceMs != nil {
		cfg.DebounceMs = *partial.DebounceMs
	}
	return nil
}

// mergeEnv merges the environment variables onto cfg.
func (l *loader) mergeEnv(cfg *Config) {
	if value, ok := l.lookupEnv(EnvSkipPatterns); ok && strings.TrimSpace(value) != "" {
		cfg.SkipPatterns = SplitList(value)
	}
	if value, ok := l.lookupEnv(EnvFooter); ok {
		cfg.Footer = value
	}
	if value, ok := l.lookupEnv(EnvDryRun); ok {
		cfg.DryRun = ParseBool(value)
	}
	if value, ok := l.lookupEnv(EnvGitHubToken); ok && value != "" {
		cfg.GitHubToken = value
	}
	if value, ok := l.lookupEnv(EnvGitHubRepository); ok && value != "" {
		cfg.GitHubRepository = value
	}
	if value, ok := l.lookupEnv(EnvGitHubOutput); ok && value != "" {
		cfg.GitHubOutput = value
	}
}

// SplitList splits a comma separated list, trimming blanks and dropping empty entries.
func SplitList(value string) []string {
	var result []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		result = append(result, part)
	}
	return result
}

// ParseBool returns true only for a case-insensitive "true".
func ParseBool(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "true")
}
