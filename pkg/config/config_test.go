// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/bborbe/calver-auto-release/pkg/calver"
	"github.com/bborbe/calver-auto-release/pkg/config"
	"github.com/bborbe/calver-auto-release/pkg/notes"
)

var _ = Describe("Config", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Defaults", func() {
		It("returns config with default values", func() {
			cfg := config.Defaults()
			Expect(cfg.RepoPath).To(Equal("."))
			Expect(cfg.SkipPatterns).To(Equal([]string{"[skip release]", "[pre-commit.ci]", "⬆️ Update"}))
			Expect(cfg.ExtraSkipPatterns).To(BeEmpty())
			Expect(cfg.Footer).To(Equal(notes.DefaultFooter))
			Expect(cfg.DryRun).To(BeFalse())
			Expect(cfg.Remote).To(Equal("origin"))
			Expect(cfg.Push).To(BeTrue())
			Expect(cfg.Publish).To(BeFalse())
			Expect(cfg.DebounceMs).To(Equal(500))
		})

		It("does not share the default skip patterns", func() {
			cfg := config.Defaults()
			cfg.SkipPatterns[0] = "changed"
			Expect(calver.DefaultSkipPatterns[0]).To(Equal("[skip release]"))
		})

		It("is valid", func() {
			Expect(config.Defaults().Validate(ctx)).To(Succeed())
		})
	})

	Describe("Validate", func() {
		var cfg config.Config

		BeforeEach(func() {
			cfg = config.Defaults()
		})

		It("fails for empty remote", func() {
			cfg.Remote = ""
			Expect(cfg.Validate(ctx)).NotTo(Succeed())
		})

		It("fails for empty repoPath", func() {
			cfg.RepoPath = ""
			Expect(cfg.Validate(ctx)).NotTo(Succeed())
		})

		It("fails for zero debounceMs", func() {
			cfg.DebounceMs = 0
			Expect(cfg.Validate(ctx)).NotTo(Succeed())
		})

		It("fails for publish without token", func() {
			cfg.Publish = true
			cfg.GitHubRepository = "owner/repo"
			Expect(cfg.Validate(ctx)).NotTo(Succeed())
		})

		It("fails for publish without repository", func() {
			cfg.Publish = true
			cfg.GitHubToken = "token"
			Expect(cfg.Validate(ctx)).NotTo(Succeed())
		})

		It("fails for publish without push", func() {
			cfg.Publish = true
			cfg.Push = false
			cfg.GitHubToken = "token"
			cfg.GitHubRepository = "owner/repo"
			Expect(cfg.Validate(ctx)).NotTo(Succeed())
		})

		It("succeeds for publish with token and repository", func() {
			cfg.Publish = true
			cfg.GitHubToken = "token"
			cfg.GitHubRepository = "owner/repo"
			Expect(cfg.Validate(ctx)).To(Succeed())
		})
	})

	Describe("EffectiveSkipPatterns", func() {
		It("returns the defaults", func() {
			Expect(config.Defaults().EffectiveSkipPatterns()).To(Equal(calver.DefaultSkipPatterns))
		})

		It("extends the replaced set", func() {
			cfg := config.Defaults()
			cfg.SkipPatterns = []string{"[custom]"}
			cfg.ExtraSkipPatterns = []string{"[more]", "[custom]"}
			Expect(cfg.EffectiveSkipPatterns()).To(Equal(calver.SkipPatterns{"[custom]", "[more]"}))
		})

		It("falls back to the defaults for an empty set", func() {
			cfg := config.Defaults()
			cfg.SkipPatterns = []string{}
			cfg.ExtraSkipPatterns = []string{"[more]"}
			Expect(cfg.EffectiveSkipPatterns()).To(Equal(calver.DefaultSkipPatterns.With("[more]")))
		})
	})

	DescribeTable("ParseBool",
		func(value string, expected bool) {
			Expect(config.ParseBool(value)).To(Equal(expected))
		},
		Entry("true", "true", true),
		Entry("upper case", "TRUE", true),
		Entry("mixed case", "True", true),
		Entry("false", "false", false),
		Entry("empty", "", false),
		Entry("invalid", "yes", false),
		Entry("one", "1", false),
	)

	DescribeTable("SplitList",
		func(value string, expected []string) {
			Expect(config.SplitList(value)).To(Equal(expected))
		},
		Entry("single", "[a]", []string{"[a]"}),
		Entry("multiple", "[a],[b]", []string{"[a]", "[b]"}),
		Entry("blanks", " [a] , ,[b] ", []string{"[a]", "[b]"}),
	)

	Describe("Loader", func() {
		var (
			tmpDir string
			flags  *pflag.FlagSet
			args   []string
			cfg    config.Config
			err    error
		)

		envNames := []string{
			config.EnvSkipPatterns,
			config.EnvFooter,
			config.EnvDryRun,
			config.EnvGitHubToken,
			config.EnvGitHubRepository,
			config.EnvGitHubOutput,
		}

		writeConfig := func(content string) {
			Expect(os.WriteFile(filepath.Join(tmpDir, config.FileName), []byte(content), 0600)).To(Succeed())
		}

		setEnv := func(name string, value string) {
			Expect(os.Setenv(name, value)).To(Succeed())
		}

		BeforeEach(func() {
			tmpDir, err = os.MkdirTemp("", "config-test-*")
			Expect(err).NotTo(HaveOccurred())

			for _, name := range envNames {
				if value, ok := os.LookupEnv(name); ok {
					DeferCleanup(os.Setenv, name, value)
				} else {
					DeferCleanup(os.Unsetenv, name)
				}
				Expect(os.Unsetenv(name)).To(Succeed())
			}

			flags = pflag.NewFlagSet("test", pflag.ContinueOnError)
			config.AddFlags(flags)
			config.AddWatchFlags(flags)
			args = []string{"--repo-path", tmpDir}
		})

		AfterEach(func() {
			_ = os.RemoveAll(tmpDir)
		})

		JustBeforeEach(func() {
			Expect(flags.Parse(args)).To(Succeed())
			cfg, err = config.NewLoader(flags).Load(ctx)
		})

		It("returns defaults when config file does not exist", func() {
			Expect(err).NotTo(HaveOccurred())
			expected := config.Defaults()
			expected.RepoPath = tmpDir
			Expect(cfg).To(Equal(expected))
		})

		Context("with a full config file", func() {
			BeforeEach(func() {
				writeConfig(`skipPatterns:
  - "[no release]"
extraSkipPatterns:
  - "[wip]"
footer: "\n\nbye"
remote: upstream
push: true
publish: true
githubRepository: owner/repo
listen: ":9090"
debounceMs: 1000
`)
				setEnv(config.EnvGitHubToken, "token")
			})

			It("loads all values", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.SkipPatterns).To(Equal([]string{"[no release]"}))
				Expect(cfg.ExtraSkipPatterns).To(Equal([]string{"[wip]"}))
				Expect(cfg.Footer).To(Equal("\n\nbye"))
				Expect(cfg.Remote).To(Equal("upstream"))
				Expect(cfg.Push).To(BeTrue())
				Expect(cfg.Publish).To(BeTrue())
				Expect(cfg.GitHubRepository).To(Equal("owner/repo"))
				Expect(cfg.Listen).To(Equal(":9090"))
				Expect(cfg.DebounceMs).To(Equal(1000))
			})
		})

		Context("with a partial config file", func() {
			BeforeEach(func() {
				writeConfig("remote: upstream\n")
			})

			It("merges with defaults", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Remote).To(Equal("upstream"))
				Expect(cfg.Push).To(BeTrue())
				Expect(cfg.SkipPatterns).To(Equal(config.Defaults().SkipPatterns))
				Expect(cfg.Footer).To(Equal(notes.DefaultFooter))
			})
		})

		Context("with invalid YAML", func() {
			BeforeEach(func() {
				writeConfig("remote: [unclosed\n")
			})

			It("returns a parse error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("parse config file"))
			})
		})

		Context("with an invalid value", func() {
			BeforeEach(func() {
				writeConfig("debounceMs: -100\n")
			})

			It("returns a validation error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("validate config"))
			})
		})

		Context("with an explicit config file", func() {
			BeforeEach(func() {
				path := filepath.Join(tmpDir, "other.yaml")
				Expect(os.WriteFile(path, []byte("remote: other\n"), 0600)).To(Succeed())
				args = append(args, "--config", path)
			})

			It("reads it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Remote).To(Equal("other"))
			})
		})

		Context("with a missing explicit config file", func() {
			BeforeEach(func() {
				args = append(args, "--config", filepath.Join(tmpDir, "missing.yaml"))
			})

			It("returns an error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("read config file"))
			})
		})

		Context("with environment variables", func() {
			BeforeEach(func() {
				writeConfig("skipPatterns: [\"[file]\"]\nfooter: from-file\n")
				setEnv(config.EnvSkipPatterns, "[env-a], [env-b]")
				setEnv(config.EnvFooter, "from-env")
				setEnv(config.EnvDryRun, "TRUE")
				setEnv(config.EnvGitHubToken, "token")
				setEnv(config.EnvGitHubRepository, "owner/repo")
				setEnv(config.EnvGitHubOutput, "/tmp/output")
			})

			It("overrides the config file", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.SkipPatterns).To(Equal([]string{"[env-a]", "[env-b]"}))
				Expect(cfg.Footer).To(Equal("from-env"))
				Expect(cfg.DryRun).To(BeTrue())
				Expect(cfg.GitHubToken).To(Equal("token"))
				Expect(cfg.GitHubRepository).To(Equal("owner/repo"))
				Expect(cfg.GitHubOutput).To(Equal("/tmp/output"))
			})

			Context("and flags", func() {
				BeforeEach(func() {
					args = append(args,
						"--skip-pattern", "[flag]",
						"--extra-skip-pattern", "[extra]",
						"--footer", "from-flag",
						"--dry-run=false",
						"--github-output", "/tmp/flag-output",
					)
				})

				It("prefers the flags", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(cfg.SkipPatterns).To(Equal([]string{"[flag]"}))
					Expect(cfg.ExtraSkipPatterns).To(Equal([]string{"[extra]"}))
					Expect(cfg.Footer).To(Equal("from-flag"))
					Expect(cfg.DryRun).To(BeFalse())
					Expect(cfg.GitHubOutput).To(Equal("/tmp/flag-output"))
				})
			})
		})

		Context("with an invalid CALVER_DRY_RUN", func() {
			BeforeEach(func() {
				setEnv(config.EnvDryRun, "maybe")
			})

			It("disables dry-run", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.DryRun).To(BeFalse())
			})
		})

		Context("with repeated skip pattern flags", func() {
			BeforeEach(func() {
				args = append(args, "--skip-pattern", "[a]", "--skip-pattern", "[b]")
			})

			It("replaces the defaults", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.EffectiveSkipPatterns()).To(Equal(calver.SkipPatterns{"[a]", "[b]"}))
			})
		})

		Context("with no-push", func() {
			BeforeEach(func() {
				args = append(args, "--no-push")
			})

			It("disables push", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Push).To(BeFalse())
			})
		})

		Context("with publish flags", func() {
			BeforeEach(func() {
				args = append(args,
					"--publish",
					"--remote", "upstream",
					"--github-token", "token",
					"--github-repository", "owner/repo",
					"--listen", ":8080",
					"--debounce-ms", "250",
				)
			})

			It("applies them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Push).To(BeTrue())
				Expect(cfg.Publish).To(BeTrue())
				Expect(cfg.Remote).To(Equal("upstream"))
				Expect(cfg.GitHubToken).To(Equal("token"))
				Expect(cfg.GitHubRepository).To(Equal("owner/repo"))
				Expect(cfg.Listen).To(Equal(":8080"))
				Expect(cfg.DebounceMs).To(Equal(250))
			})
		})

		Context("with publish but no token", func() {
			BeforeEach(func() {
				args = append(args, "--publish", "--github-repository", "owner/repo")
			})

			It("returns a validation error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("validate config"))
			})
		})
	})
})
