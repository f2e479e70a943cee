// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/bborbe/errors"
	"github.com/bborbe/run"

	"github.com/bborbe/calver-auto-release/pkg/lock"
	"github.com/bborbe/calver-auto-release/pkg/processor"
	"github.com/bborbe/calver-auto-release/pkg/server"
	"github.com/bborbe/calver-auto-release/pkg/watcher"
)

// Runner orchestrates the watch daemon.
//
//counterfeiter:generate -o ../../mocks/runner.go --fake-name Runner . Runner
type Runner interface {
	Run(ctx context.Context) error
}

// runner orchestrates the watch daemon.
type runner struct {
	locker    lock.Locker
	watcher   watcher.Watcher
	processor processor.Processor
	server    server.Server
}

// NewRunner creates a new Runner. A nil server disables the HTTP endpoints.
func NewRunner(
	locker lock.Locker,
	watcher watcher.Watcher,
	processor processor.Processor,
	server server.Server,
) Runner {
	return &runner{
		locker:    locker,
		watcher:   watcher,
		processor: processor,
		server:    server,
	}
}

// Run executes the daemon:
// 1. Acquire the watch lock so only one daemon serves a checkout
// 2. Run watcher, processor and server in parallel using run.CancelOnFirstError
func (r *runner) Run(ctx context.Context) error {
	if err := r.locker.Acquire(ctx); err != nil {
		return errors.Wrap(ctx, err, "acquire lock")
	}
	defer func() {
		if err := r.locker.Release(context.WithoutCancel(ctx)); err != nil {
			log.Printf("calver-auto-release: failed to release lock: %v", err)
		}
	}()

	log.Printf("calver-auto-release: acquired lock %s", lock.WatchFileName)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// if any fails, the context cancels the others
	runners := []run.Func{
		r.watcher.Watch,
		r.processor.Process,
	}
	if r.server != nil {
		runners = append(runners, r.server.ListenAndServe)
	}
	return run.CancelOnFirstError(ctx, runners...)
}
