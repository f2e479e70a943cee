// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory_test

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/calver-auto-release/pkg/config"
	"github.com/bborbe/calver-auto-release/pkg/factory"
)

var _ = Describe("Factory", func() {
	var (
		ctx context.Context
		cfg config.Config
	)

	BeforeEach(func() {
		ctx = context.Background()
		cfg = config.Defaults()
		cfg.RepoPath = GinkgoT().TempDir()
	})

	Describe("CreateRunner", func() {
		It("should return a non-nil runner", func() {
			runner, err := factory.CreateRunner(ctx, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(runner).NotTo(BeNil())
		})
	})

	Describe("CreateServer", func() {
		It("returns nil without listen address", func() {
			Expect(factory.CreateServer(cfg)).To(BeNil())
		})

		It("returns a server with listen address", func() {
			cfg.Listen = "127.0.0.1:0"
			Expect(factory.CreateServer(cfg)).NotTo(BeNil())
		})
	})

	Describe("CreatePublisher", func() {
		It("returns nil if publishing is disabled", func() {
			publisher, err := factory.CreatePublisher(ctx, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(publisher).To(BeNil())
		})

		It("returns a publisher for a valid repository", func() {
			cfg.Publish = true
			cfg.GitHubToken = "token"
			cfg.GitHubRepository = "bborbe/calver-auto-release"
			publisher, err := factory.CreatePublisher(ctx, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(publisher).NotTo(BeNil())
		})

		It("fails for an invalid repository", func() {
			cfg.Publish = true
			cfg.GitHubRepository = "invalid"
			_, err := factory.CreatePublisher(ctx, cfg)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("CreateReleaseCommand", func() {
		It("should return a non-nil command", func() {
			command, err := factory.CreateReleaseCommand(ctx, cfg, &bytes.Buffer{})
			Expect(err).NotTo(HaveOccurred())
			Expect(command).NotTo(BeNil())
		})
	})

	Describe("CreateNextCommand", func() {
		It("fails on a directory without git repository", func() {
			out := &bytes.Buffer{}
			err := factory.CreateNextCommand(cfg, out).Run(ctx, false)
			Expect(err).To(HaveOccurred())
			Expect(out.Len()).To(Equal(0))
		})
	})
})
