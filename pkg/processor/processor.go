// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package processor

import (
	"context"
	"log"
	"time"

	"github.com/bborbe/calver-auto-release/pkg/releaser"
)

// Processor runs a release whenever the watcher signals a moved HEAD.
//
//counterfeiter:generate -o ../../mocks/processor.go --fake-name Processor . Processor
type Processor interface {
	Process(ctx context.Context) error
}

// processor implements Processor.
type processor struct {
	releaser releaser.Releaser
	ready    <-chan struct{}
	interval time.Duration
}

// NewProcessor creates a new Processor rescanning every interval in case a signal was missed.
func NewProcessor(
	releaser releaser.Releaser,
	ready <-chan struct{},
	interval time.Duration,
) Processor {
	return &processor{
		releaser: releaser,
		ready:    ready,
		interval: interval,
	}
}

// Process releases once on startup, then on every ready signal until ctx is done.
// Release errors are logged and do not stop the loop.
func (p *processor) Process(ctx context.Context) error {
	log.Printf("calver-auto-release: processor started")

	p.release(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("calver-auto-release: processor shutting down")
			return nil

		case <-p.ready:
			p.release(ctx)

		case <-ticker.C:
			p.release(ctx)
		}
	}
}

// release runs the releaser once and logs the outcome.
func (p *processor) release(ctx context.Context) {
	result, err := p.releaser.Release(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Printf("calver-auto-release: release failed: %v", err)
		return
	}
	switch {
	case result.Skipped:
		log.Printf("calver-auto-release: no release: %s", result.Reason)
	case result.DryRun:
		log.Printf("calver-auto-release: would create new tag: %s", result.Version)
	default:
		log.Printf("calver-auto-release: created new tag: %s", result.Version)
	}
}
