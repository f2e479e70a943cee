// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bborbe/errors"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// ErrTagExists is returned by CreateTag if a tag with the same name already exists.
var ErrTagExists = stderrors.New("tag already exists")

// Repository gives read access to tags and commits and creates release tags.
//
//counterfeiter:generate -o ../../mocks/git-repository.go --fake-name Repository . Repository
type Repository interface {
	// Tags returns the short names of all tags.
	Tags(ctx context.Context) ([]string, error)
	// HeadMessage returns the full message of the HEAD commit.
	HeadMessage(ctx context.Context) (string, error)
	// HeadTagged reports whether any tag points at the HEAD commit.
	HeadTagged(ctx context.Context) (bool, error)
	// CommitSubjects returns the first line of every commit reachable from HEAD
	// and not from sinceTag, newest first.
	CommitSubjects(ctx context.Context, sinceTag string) ([]string, error)
	// CreateTag creates an annotated tag on HEAD tagged by the HEAD author.
	CreateTag(ctx context.Context, name string, message string) error
}

// repository implements Repository with go-git.
type repository struct {
	path string
	now  func() time.Time
}

// NewRepository creates a Repository for the git repository containing path.
func NewRepository(path string) Repository {
	return &repository{
		path: path,
		now:  time.Now,
	}
}

// GitDir returns the .git directory of the repository at path,
// or path itself for bare repositories and worktrees with a .git file.
func GitDir(path string) string {
	dotGit := filepath.Join(path, gogit.GitDirName)
	if info, err := os.Stat(dotGit); err == nil && info.IsDir() {
		return dotGit
	}
	return path
}

func (r *repository) open(ctx context.Context) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(r.path, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "open git repository %s", r.path)
	}
	return repo, nil
}

func (r *repository) headCommit(ctx context.Context, repo *gogit.Repository) (*object.Commit, error) {
	head, err := repo.Head()
	if err != nil {
		return nil, errors.Wrap(ctx, err, "get HEAD reference")
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, errors.Wrap(ctx, err, "get HEAD commit")
	}
	return commit, nil
}

// Tags returns the short names of all tags.
func (r *repository) Tags(ctx context.Context) ([]string, error) {
	repo, err := r.open(ctx)
	if err != nil {
		return nil, err
	}
	var tags []string
	err = r.forEachTag(repo, func(ref *plumbing.Reference) error {
		tags = append(tags, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(ctx, err, "list tags")
	}
	return tags, nil
}

// HeadMessage returns the full message of the HEAD commit.
func (r *repository) HeadMessage(ctx context.Context) (string, error) {
	repo, err := r.open(ctx)
	if err != nil {
		return "", err
	}
	commit, err := r.headCommit(ctx, repo)
	if err != nil {
		return "", err
	}
	return commit.Message, nil
}

// HeadTagged reports whether any tag points at the HEAD commit.
func (r *repository) HeadTagged(ctx context.Context) (bool, error) {
	repo, err := r.open(ctx)
	if err != nil {
		return false, err
	}
	head, err := r.headCommit(ctx, repo)
	if err != nil {
		return false, err
	}
	tagged := false
	err = r.forEachTag(repo, func(ref *plumbing.Reference) error {
		hash, err := peel(repo, ref)
		if err != nil {
			return err
		}
		if hash == head.Hash {
			tagged = true
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return false, errors.Wrap(ctx, err, "check tags of HEAD")
	}
	return tagged, nil
}

// CommitSubjects returns the subjects of commits reachable from HEAD but not from sinceTag,
// all commits if sinceTag is empty or unknown.
func (r *repository) CommitSubjects(ctx context.Context, sinceTag string) ([]string, error) {
	repo, err := r.open(ctx)
	if err != nil {
		return nil, err
	}
	head, err := r.headCommit(ctx, repo)
	if err != nil {
		return nil, err
	}

	released := map[plumbing.Hash]struct{}{}
	if boundary := r.resolveTag(repo, sinceTag); !boundary.IsZero() {
		if err := r.walk(repo, boundary, func(c *object.Commit) error {
			released[c.Hash] = struct{}{}
			return nil
		}); err != nil {
			return nil, errors.Wrapf(ctx, err, "walk history of tag %s", sinceTag)
		}
	}

	var subjects []string
	err = r.walk(repo, head.Hash, func(c *object.Commit) error {
		if _, ok := released[c.Hash]; ok {
			return nil
		}
		subjects = append(subjects, Subject(c.Message))
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(ctx, err, "walk history of HEAD")
	}
	return subjects, nil
}

// CreateTag creates an annotated tag on HEAD tagged by the HEAD author.
func (r *repository) CreateTag(ctx context.Context, name string, message string) error {
	repo, err := r.open(ctx)
	if err != nil {
		return err
	}
	head, err := r.headCommit(ctx, repo)
	if err != nil {
		return err
	}
	_, err = repo.CreateTag(name, head.Hash, &gogit.CreateTagOptions{
		Tagger: &object.Signature{
			Name:  head.Author.Name,
			Email: head.Author.Email,
			When:  r.now(),
		},
		Message: message,
	})
	if stderrors.Is(err, gogit.ErrTagExists) {
		return errors.Wrapf(ctx, ErrTagExists, "create tag %s", name)
	}
	if err != nil {
		return errors.Wrapf(ctx, err, "create tag %s", name)
	}
	return nil
}

// resolveTag returns the commit of tag name, plumbing.ZeroHash if it names no tagged commit.
func (r *repository) resolveTag(repo *gogit.Repository, name string) plumbing.Hash {
	if name == "" {
		return plumbing.ZeroHash
	}
	ref, err := repo.Tag(name)
	if err != nil {
		return plumbing.ZeroHash
	}
	hash, err := peel(repo, ref)
	if err != nil {
		return plumbing.ZeroHash
	}
	return hash
}

func (r *repository) walk(repo *gogit.Repository, from plumbing.Hash, fn func(*object.Commit) error) error {
	iter, err := repo.Log(&gogit.LogOptions{
		From:  from,
		Order: gogit.LogOrderCommitterTime,
	})
	if err != nil {
		return err
	}
	defer iter.Close()
	return iter.ForEach(fn)
}

func (r *repository) forEachTag(repo *gogit.Repository, fn func(*plumbing.Reference) error) error {
	iter, err := repo.Tags()
	if err != nil {
		return err
	}
	defer iter.Close()
	return iter.ForEach(fn)
}

// peel returns the commit hash a tag reference points at, following annotated tags.
// Tags on anything but a commit peel to plumbing.ZeroHash.
func peel(repo *gogit.Repository, ref *plumbing.Reference) (plumbing.Hash, error) {
	tag, err := repo.TagObject(ref.Hash())
	switch {
	case err == nil:
		if tag.TargetType != plumbing.CommitObject {
			return plumbing.ZeroHash, nil
		}
		commit, err := tag.Commit()
		if err != nil {
			return plumbing.ZeroHash, err
		}
		return commit.Hash, nil
	case stderrors.Is(err, plumbing.ErrObjectNotFound):
		if _, err := repo.CommitObject(ref.Hash()); err != nil {
			if stderrors.Is(err, plumbing.ErrObjectNotFound) {
				return plumbing.ZeroHash, nil
			}
			return plumbing.ZeroHash, err
		}
		return ref.Hash(), nil
	default:
		return plumbing.ZeroHash, err
	}
}

// Subject returns the first line of a commit message.
func Subject(message string) string {
	subject, _, _ := strings.Cut(strings.TrimLeft(message, "\n"), "\n")
	return strings.TrimRight(subject, "\r")
}
