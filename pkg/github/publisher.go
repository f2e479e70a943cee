// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package github

import (
	"context"
	"log"
	"strings"

	"github.com/bborbe/errors"
	"github.com/google/go-github/v60/github"
)

// Publisher creates a hosted release for an already pushed tag.
//
//counterfeiter:generate -o ../../mocks/github-publisher.go --fake-name Publisher . Publisher
type Publisher interface {
	Publish(ctx context.Context, version string, notes string) error
}

// publisher implements Publisher with go-github.
type publisher struct {
	client *github.Client
	owner  string
	repo   string
}

// NewClient creates a GitHub API client authenticated with token.
func NewClient(token string) *github.Client {
	client := github.NewClient(nil)
	if token == "" {
		return client
	}
	return client.WithAuthToken(token)
}

// NewPublisher creates a Publisher for the repository "owner/repo".
func NewPublisher(ctx context.Context, client *github.Client, repository string) (Publisher, error) {
	owner, repo, err := ParseRepository(ctx, repository)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "parse repository")
	}
	return &publisher{
		client: client,
		owner:  owner,
		repo:   repo,
	}, nil
}

// Publish creates the release named after version with notes as body.
func (p *publisher) Publish(ctx context.Context, version string, notes string) error {
	release, _, err := p.client.Repositories.CreateRelease(ctx, p.owner, p.repo, &github.RepositoryRelease{
		TagName: github.String(version),
		Name:    github.String(version),
		Body:    github.String(notes),
	})
	if err != nil {
		return errors.Wrapf(ctx, err, "create release %s in %s/%s", version, p.owner, p.repo)
	}
	log.Printf("calver-auto-release: published release %s %s", version, release.GetHTMLURL())
	return nil
}

// ParseRepository splits "owner/repo", a github.com URL or a clone URL into owner and repo.
func ParseRepository(ctx context.Context, repository string) (string, string, error) {
	trimmed := strings.TrimPrefix(repository, "https://")
	trimmed = strings.TrimPrefix(trimmed, "http://")
	trimmed = strings.TrimPrefix(trimmed, "git@github.com:")
	trimmed = strings.TrimPrefix(trimmed, "github.com/")
	trimmed = strings.TrimSuffix(trimmed, ".git")
	trimmed = strings.TrimSuffix(trimmed, "/")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Errorf(ctx, "cannot parse github repository from %q", repository)
	}
	return parts[0], parts[1], nil
}
