// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package status

import (
	"context"
	"time"

	"github.com/bborbe/errors"
	libtime "github.com/bborbe/time"

	"github.com/bborbe/calver-auto-release/pkg/calver"
	"github.com/bborbe/calver-auto-release/pkg/git"
)

// Decision is the outcome a release run would have.
type Decision string

const (
	DecisionRelease       Decision = "release"
	DecisionSkip          Decision = "skip"
	DecisionAlreadyTagged Decision = "already-tagged"
)

// Status is the read-only release plan of a repository.
type Status struct {
	Date          string   `json:"date"`
	Tags          []string `json:"tags"`
	LatestVersion string   `json:"latest_version,omitempty"`
	HeadSubject   string   `json:"head_subject"`
	HeadTagged    bool     `json:"head_tagged"`
	Decision      Decision `json:"decision"`
	NextVersion   string   `json:"next_version,omitempty"`
	Reason        string   `json:"reason,omitempty"`
	Changes       []string `json:"changes"`
}

// IsRelease returns true if a release run would create NextVersion.
func (s *Status) IsRelease() bool {
	return s.Decision == DecisionRelease
}

// Checker computes the release plan of a repository without changing it.
//
//counterfeiter:generate -o ../../mocks/status-checker.go --fake-name Checker . Checker
type Checker interface {
	GetStatus(ctx context.Context) (*Status, error)
}

// checker implements Checker.
type checker struct {
	repository            git.Repository
	scanner               calver.Scanner
	decider               calver.Decider
	currentDateTimeGetter libtime.CurrentDateTimeGetter
}

// NewChecker creates a new Checker.
func NewChecker(
	repository git.Repository,
	scanner calver.Scanner,
	decider calver.Decider,
	currentDateTimeGetter libtime.CurrentDateTimeGetter,
) Checker {
	return &checker{
		repository:            repository,
		scanner:               scanner,
		decider:               decider,
		currentDateTimeGetter: currentDateTimeGetter,
	}
}

// GetStatus reads tags and HEAD and runs the version decision.
func (c *checker) GetStatus(ctx context.Context) (*Status, error) {
	date := calver.DateOf(time.Time(c.currentDateTimeGetter.Now()))
	status := &Status{
		Date:    date.String(),
		Tags:    []string{},
		Changes: []string{},
	}

	tags, err := c.repository.Tags(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "list tags")
	}
	status.Tags = append(status.Tags, tags...)

	var latest *calver.Version
	if version, ok := c.scanner.Scan(tags); ok {
		latest = version.Ptr()
		status.LatestVersion = version.String()
	}

	message, err := c.repository.HeadMessage(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "read head message")
	}
	status.HeadSubject = git.Subject(message)

	status.HeadTagged, err = c.repository.HeadTagged(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "check head tagged")
	}
	if status.HeadTagged {
		status.Decision = DecisionAlreadyTagged
		status.Reason = "current commit is already tagged"
		return status, nil
	}

	decision := c.decider.Decide(date, status.HeadSubject, latest)
	if !decision.IsRelease() {
		status.Decision = DecisionSkip
		status.Reason = decision.Reason
		return status, nil
	}
	status.Decision = DecisionRelease
	status.NextVersion = decision.Version.String()

	changes, err := c.repository.CommitSubjects(ctx, status.LatestVersion)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "list commit subjects")
	}
	status.Changes = append(status.Changes, changes...)

	return status, nil
}
