// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watcher

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bborbe/errors"
	"github.com/fsnotify/fsnotify"
)

// Watcher watches the git directory and signals when HEAD or a branch moved.
//
//counterfeiter:generate -o ../../mocks/watcher.go --fake-name Watcher . Watcher
type Watcher interface {
	Watch(ctx context.Context) error
}

// watcher implements Watcher.
type watcher struct {
	gitDir   string
	ready    chan<- struct{}
	debounce time.Duration
}

// NewWatcher creates a new Watcher with the specified debounce duration.
func NewWatcher(
	gitDir string,
	ready chan<- struct{},
	debounce time.Duration,
) Watcher {
	return &watcher{
		gitDir:   gitDir,
		ready:    ready,
		debounce: debounce,
	}
}

// Watch watches HEAD, packed-refs and refs/heads until ctx is done.
func (w *watcher) Watch(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(ctx, err, "create watcher")
	}
	defer fsWatcher.Close()

	gitDir, err := filepath.Abs(w.gitDir)
	if err != nil {
		return errors.Wrap(ctx, err, "resolve git dir")
	}

	for _, dir := range w.watchDirs(gitDir) {
		if err := fsWatcher.Add(dir); err != nil {
			return errors.Wrapf(ctx, err, "add watch path %s", dir)
		}
	}

	log.Printf("calver-auto-release: watcher started on %s", gitDir)

	var debounceMu sync.Mutex
	var debounceTimer *time.Timer
	defer func() {
		debounceMu.Lock()
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		debounceMu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Printf("calver-auto-release: watcher shutting down")
			return nil

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return errors.Errorf(ctx, "watcher error channel closed")
			}
			log.Printf("calver-auto-release: watcher error: %v", err)
			return errors.Wrap(ctx, err, "watcher error")

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return errors.Errorf(ctx, "watcher events channel closed")
			}
			if !w.relevant(gitDir, event) {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				w.addIfDir(fsWatcher, event.Name)
			}

			debounceMu.Lock()
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, w.signal)
			debounceMu.Unlock()
		}
	}
}

// watchDirs returns the git dir and every existing directory below refs/heads.
func (w *watcher) watchDirs(gitDir string) []string {
	dirs := []string{gitDir}
	_ = filepath.WalkDir(filepath.Join(gitDir, "refs", "heads"), func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs
}

// addIfDir watches newly created branch directories like refs/heads/feature.
func (w *watcher) addIfDir(fsWatcher *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if err := fsWatcher.Add(path); err != nil {
		log.Printf("calver-auto-release: watch %s failed: %v", path, err)
	}
}

// relevant reports whether event moved HEAD or a branch.
func (w *watcher) relevant(gitDir string, event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	if strings.HasSuffix(event.Name, ".lock") {
		return false
	}
	rel, err := filepath.Rel(gitDir, event.Name)
	if err != nil {
		return false
	}
	switch rel {
	case "HEAD", "packed-refs":
		return true
	}
	return strings.HasPrefix(rel, filepath.Join("refs", "heads")+string(filepath.Separator))
}

// signal notifies the processor without blocking.
func (w *watcher) signal() {
	select {
	case w.ready <- struct{}{}:
	default:
		// processor is already busy
	}
}
