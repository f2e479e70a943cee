// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/calver-auto-release/pkg/git"
)

var _ = Describe("Repository", func() {
	var (
		ctx     context.Context
		tempDir string
		repo    *gogit.Repository
		r       git.Repository
		when    time.Time
	)

	commit := func(message string) plumbing.Hash {
		wt, err := repo.Worktree()
		Expect(err).NotTo(HaveOccurred())
		when = when.Add(time.Minute)
		hash, err := wt.Commit(message, &gogit.CommitOptions{
			AllowEmptyCommits: true,
			Author: &object.Signature{
				Name:  "Release Bot",
				Email: "bot@example.com",
				When:  when,
			},
		})
		Expect(err).NotTo(HaveOccurred())
		return hash
	}

	lightweightTag := func(name string, hash plumbing.Hash) {
		_, err := repo.CreateTag(name, hash, nil)
		Expect(err).NotTo(HaveOccurred())
	}

	annotatedTag := func(name string, hash plumbing.Hash) {
		_, err := repo.CreateTag(name, hash, &gogit.CreateTagOptions{
			Tagger: &object.Signature{
				Name:  "Release Bot",
				Email: "bot@example.com",
				When:  when,
			},
			Message: "Release " + name,
		})
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		ctx = context.Background()
		when = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

		var err error
		tempDir, err = os.MkdirTemp("", "git-repository-test-*")
		Expect(err).NotTo(HaveOccurred())

		repo, err = gogit.PlainInit(tempDir, false)
		Expect(err).NotTo(HaveOccurred())

		r = git.NewRepository(tempDir)
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	Describe("Tags", func() {
		It("returns no tags for an untagged repository", func() {
			commit("initial")
			tags, err := r.Tags(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tags).To(BeEmpty())
		})

		It("returns lightweight and annotated tags", func() {
			first := commit("initial")
			second := commit("second")
			lightweightTag("2025.5.0", first)
			annotatedTag("2025.6.0", second)
			lightweightTag("latest", second)

			tags, err := r.Tags(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tags).To(ConsistOf("2025.5.0", "2025.6.0", "latest"))
		})

		It("finds the repository from a subdirectory", func() {
			first := commit("initial")
			lightweightTag("2025.5.0", first)
			subDir := filepath.Join(tempDir, "sub", "dir")
			Expect(os.MkdirAll(subDir, 0750)).To(Succeed())

			tags, err := git.NewRepository(subDir).Tags(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tags).To(ConsistOf("2025.5.0"))
		})

		It("returns an error outside a git repository", func() {
			otherDir, err := os.MkdirTemp("", "git-no-repo-*")
			Expect(err).NotTo(HaveOccurred())
			defer func() { _ = os.RemoveAll(otherDir) }()

			_, err = git.NewRepository(otherDir).Tags(ctx)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("HeadMessage", func() {
		It("returns the full message of HEAD", func() {
			commit("first")
			commit("feat: add thing\n\nlonger body")

			message, err := r.HeadMessage(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(message).To(Equal("feat: add thing\n\nlonger body"))
		})

		It("returns an error for a repository without commits", func() {
			_, err := r.HeadMessage(ctx)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("HeadTagged", func() {
		It("returns false without tags", func() {
			commit("initial")
			tagged, err := r.HeadTagged(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tagged).To(BeFalse())
		})

		It("returns false if only older commits are tagged", func() {
			first := commit("initial")
			annotatedTag("2025.6.0", first)
			commit("second")

			tagged, err := r.HeadTagged(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tagged).To(BeFalse())
		})

		It("returns true for a lightweight tag on HEAD", func() {
			head := commit("initial")
			lightweightTag("anything", head)

			tagged, err := r.HeadTagged(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tagged).To(BeTrue())
		})

		It("returns true for an annotated tag on HEAD", func() {
			head := commit("initial")
			annotatedTag("2025.6.0", head)

			tagged, err := r.HeadTagged(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tagged).To(BeTrue())
		})

		Context("with tags on objects other than commits", func() {
			var head plumbing.Hash

			BeforeEach(func() {
				head = commit("initial")
				headCommit, err := repo.CommitObject(head)
				Expect(err).NotTo(HaveOccurred())

				annotatedTag("tree-annotated", headCommit.TreeHash)
				lightweightTag("tree-lightweight", headCommit.TreeHash)
				annotatedTag("2025.6.0", head)
				ref, err := repo.Tag("2025.6.0")
				Expect(err).NotTo(HaveOccurred())
				annotatedTag("nested", ref.Hash())
			})

			It("ignores them when HEAD is tagged", func() {
				tagged, err := r.HeadTagged(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(tagged).To(BeTrue())
			})

			It("ignores them when HEAD is not tagged", func() {
				Expect(repo.DeleteTag("2025.6.0")).To(Succeed())
				commit("second")

				tagged, err := r.HeadTagged(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(tagged).To(BeFalse())
			})

			It("returns all subjects since such a tag", func() {
				commit("second")

				subjects, err := r.CommitSubjects(ctx, "tree-annotated")
				Expect(err).NotTo(HaveOccurred())
				Expect(subjects).To(Equal([]string{"second", "initial"}))

				subjects, err = r.CommitSubjects(ctx, "tree-lightweight")
				Expect(err).NotTo(HaveOccurred())
				Expect(subjects).To(Equal([]string{"second", "initial"}))
			})
		})
	})

	Describe("CommitSubjects", func() {
		It("returns all subjects newest first without a tag", func() {
			commit("first")
			commit("second\n\nbody")
			commit("third")

			subjects, err := r.CommitSubjects(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(subjects).To(Equal([]string{"third", "second", "first"}))
		})

		It("stops at the commit of an annotated tag", func() {
			commit("first")
			tagged := commit("second")
			annotatedTag("2025.6.0", tagged)
			commit("third")
			commit("fourth")

			subjects, err := r.CommitSubjects(ctx, "2025.6.0")
			Expect(err).NotTo(HaveOccurred())
			Expect(subjects).To(Equal([]string{"fourth", "third"}))
		})

		It("stops at the commit of a lightweight tag", func() {
			tagged := commit("first")
			lightweightTag("2025.6.0", tagged)
			commit("second")

			subjects, err := r.CommitSubjects(ctx, "2025.6.0")
			Expect(err).NotTo(HaveOccurred())
			Expect(subjects).To(Equal([]string{"second"}))
		})

		It("returns all subjects for an unknown tag", func() {
			commit("first")
			commit("second")

			subjects, err := r.CommitSubjects(ctx, "2020.1.0")
			Expect(err).NotTo(HaveOccurred())
			Expect(subjects).To(Equal([]string{"second", "first"}))
		})

		It("returns nothing if HEAD is the tagged commit", func() {
			head := commit("first")
			annotatedTag("2025.6.0", head)

			subjects, err := r.CommitSubjects(ctx, "2025.6.0")
			Expect(err).NotTo(HaveOccurred())
			Expect(subjects).To(BeEmpty())
		})
	})

	Describe("CreateTag", func() {
		It("creates an annotated tag on HEAD", func() {
			head := commit("feat: something")

			err := r.CreateTag(ctx, "2025.6.0", "Release 2025.6.0\n\nnotes")
			Expect(err).NotTo(HaveOccurred())

			ref, err := repo.Tag("2025.6.0")
			Expect(err).NotTo(HaveOccurred())
			tagObject, err := repo.TagObject(ref.Hash())
			Expect(err).NotTo(HaveOccurred())
			Expect(tagObject.Target).To(Equal(head))
			Expect(tagObject.Message).To(ContainSubstring("Release 2025.6.0"))
			Expect(tagObject.Tagger.Name).To(Equal("Release Bot"))
			Expect(tagObject.Tagger.Email).To(Equal("bot@example.com"))

			tagged, err := r.HeadTagged(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tagged).To(BeTrue())
		})

		It("returns ErrTagExists for a duplicate tag", func() {
			first := commit("first")
			lightweightTag("2025.6.0", first)
			commit("second")

			err := r.CreateTag(ctx, "2025.6.0", "Release 2025.6.0")
			Expect(err).To(HaveOccurred())
			Expect(stderrors.Is(err, git.ErrTagExists)).To(BeTrue())
		})
	})

	Describe("GitDir", func() {
		It("returns the .git directory of a worktree", func() {
			Expect(git.GitDir(tempDir)).To(Equal(filepath.Join(tempDir, ".git")))
		})

		It("returns the path itself without a .git directory", func() {
			Expect(git.GitDir("/nonexistent")).To(Equal("/nonexistent"))
		})
	})
})

var _ = DescribeTable("Subject",
	func(message string, expected string) {
		Expect(git.Subject(message)).To(Equal(expected))
	},
	Entry("single line", "fix: bug", "fix: bug"),
	Entry("multi line", "fix: bug\n\nbody", "fix: bug"),
	Entry("trailing newline", "fix: bug\n", "fix: bug"),
	Entry("windows line ending", "fix: bug\r\nbody", "fix: bug"),
	Entry("empty", "", ""),
)
