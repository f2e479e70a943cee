// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/bborbe/errors"
)

// TagPusher pushes a single tag to a remote.
//
//counterfeiter:generate -o ../../mocks/tag-pusher.go --fake-name TagPusher . TagPusher
type TagPusher interface {
	Push(ctx context.Context, remote string, tag string) error
}

// tagPusher implements TagPusher with the git binary so credential helpers keep working.
type tagPusher struct {
	path string
}

// NewTagPusher creates a TagPusher for the repository at path.
func NewTagPusher(path string) TagPusher {
	return &tagPusher{
		path: path,
	}
}

// Push runs "git push <remote> refs/tags/<tag>".
func (p *tagPusher) Push(ctx context.Context, remote string, tag string) error {
	// #nosec G204 -- remote comes from config, tag is a generated version
	cmd := exec.CommandContext(ctx, "git", "-C", p.path, "push", remote, "refs/tags/"+tag)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(
			ctx,
			err,
			"push tag %s to %s: %s",
			tag,
			remote,
			strings.TrimSpace(stderr.String()),
		)
	}
	return nil
}
