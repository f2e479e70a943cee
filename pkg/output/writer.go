// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package output

import (
	"context"
	"fmt"
	"os"

	"github.com/bborbe/errors"
)

// Writer publishes step outputs of a GitHub Actions job.
//
//counterfeiter:generate -o ../../mocks/output-writer.go --fake-name OutputWriter . Writer
type Writer interface {
	// WriteVersion appends "version=<version>" to the output file.
	WriteVersion(ctx context.Context, version string) error
}

// writer implements Writer.
type writer struct {
	path string
}

// NewWriter creates a Writer appending to path. An empty path disables output.
func NewWriter(path string) Writer {
	return &writer{
		path: path,
	}
}

// WriteVersion appends the version line to the output file.
func (w *writer) WriteVersion(ctx context.Context, version string) error {
	if w.path == "" {
		return nil
	}
	// #nosec G304 -- path is provided by the GitHub Actions runner
	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Wrapf(ctx, err, "open github output %s", w.path)
	}
	if _, err := fmt.Fprintf(file, "version=%s\n", version); err != nil {
		_ = file.Close()
		return errors.Wrap(ctx, err, "write github output")
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(ctx, err, "close github output")
	}
	return nil
}
