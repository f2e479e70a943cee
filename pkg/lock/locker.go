// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lock

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/bborbe/errors"
)

// Lock file names inside the git directory.
const (
	FileName      = "calver-auto-release.lock"
	WatchFileName = "calver-auto-release-watch.lock"
)

// ErrLocked is returned by Acquire while another run holds the lock.
var ErrLocked = stderrors.New("another release run holds the lock")

//counterfeiter:generate -o ../../mocks/locker.go --fake-name Locker . Locker

// Locker serializes release runs on one checkout.
type Locker interface {
	Acquire(ctx context.Context) error
	Release(ctx context.Context) error
}

// locker implements file-based locking using flock.
type locker struct {
	lockPath string
	fd       *os.File
}

// NewLocker creates a Locker for the lock file name in dir, usually the repository's git directory.
func NewLocker(dir string, name string) Locker {
	return &locker{
		lockPath: filepath.Join(dir, name),
	}
}

// Acquire takes the lock without blocking.
// Returns an error wrapping ErrLocked if another run holds it.
func (l *locker) Acquire(ctx context.Context) error {
	if l.fd != nil {
		return nil
	}

	fd, err := os.OpenFile(l.lockPath, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return errors.Wrap(ctx, err, "open lock file")
	}

	if err := syscall.Flock( //nolint:gosec // G115: File descriptor conversion is safe
		int(fd.Fd()),
		syscall.LOCK_EX|syscall.LOCK_NB,
	); err != nil {
		_ = fd.Close()

		pid, readErr := l.readPID()
		if readErr == nil && pid > 0 {
			return errors.Wrapf(ctx, ErrLocked, "acquire %s (pid %d)", l.lockPath, pid)
		}
		return errors.Wrapf(ctx, ErrLocked, "acquire %s", l.lockPath)
	}

	if err := l.writePID(ctx, fd); err != nil {
		_ = fd.Close()
		return errors.Wrap(ctx, err, "write pid to lock file")
	}

	// the open descriptor holds the lock
	l.fd = fd
	return nil
}

// Release releases the lock and removes the lock file.
func (l *locker) Release(ctx context.Context) error {
	if l.fd == nil {
		return nil
	}

	if err := syscall.Flock( //nolint:gosec // G115: File descriptor conversion is safe
		int(l.fd.Fd()),
		syscall.LOCK_UN,
	); err != nil {
		return errors.Wrap(ctx, err, "unlock file")
	}

	if err := l.fd.Close(); err != nil {
		return errors.Wrap(ctx, err, "close lock file")
	}
	l.fd = nil

	if err := os.Remove(l.lockPath); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(ctx, err, "remove lock file")
	}

	return nil
}

// readPID reads the PID of the holder from the lock file.
func (l *locker) readPID() (int, error) {
	data, err := os.ReadFile(l.lockPath)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

// writePID writes the current process PID to the file.
func (l *locker) writePID(ctx context.Context, fd *os.File) error {
	_ = fd.Truncate(0)
	_, _ = fd.Seek(0, 0)
	if _, err := fmt.Fprintf(fd, "%d\n", os.Getpid()); err != nil {
		return errors.Wrap(ctx, err, "write pid")
	}
	return fd.Sync()
}
