// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/calver-auto-release/mocks"
	"github.com/bborbe/calver-auto-release/pkg/server"
	"github.com/bborbe/calver-auto-release/pkg/status"
)

var _ = Describe("Server", func() {
	var (
		mockStatusChecker *mocks.Checker
		router            http.Handler
		ctx               context.Context
		cancel            context.CancelFunc
	)

	BeforeEach(func() {
		mockStatusChecker = &mocks.Checker{}
		router = server.NewRouter(mockStatusChecker)
		ctx, cancel = context.WithCancel(context.Background())
	})

	AfterEach(func() {
		cancel()
	})

	serve := func(method string, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("Server lifecycle", func() {
		It("starts and stops gracefully", func() {
			srv := server.NewServer("127.0.0.1:0", mockStatusChecker)
			done := make(chan error)
			go func() {
				done <- srv.ListenAndServe(ctx)
			}()

			time.Sleep(100 * time.Millisecond)
			cancel()

			Eventually(done, 5*time.Second).Should(Receive(BeNil()))
		})
	})

	Describe("Health endpoint", func() {
		It("returns 200 OK with status ok", func() {
			w := serve(http.MethodGet, "/health")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))
			Expect(w.Body.String()).To(Equal(`{"status":"ok"}`))
		})

		It("returns method not allowed for POST", func() {
			w := serve(http.MethodPost, "/health")

			Expect(w.Code).To(Equal(http.StatusMethodNotAllowed))
		})
	})

	Describe("Status endpoint", func() {
		It("returns status from Checker", func() {
			expectedStatus := &status.Status{
				Date:          "2025.6",
				Tags:          []string{"2025.6.0", "v1.0.0"},
				LatestVersion: "2025.6.0",
				HeadSubject:   "feat: add widget",
				Decision:      status.DecisionRelease,
				NextVersion:   "2025.6.1",
				Changes:       []string{"feat: add widget"},
			}
			mockStatusChecker.GetStatusReturns(expectedStatus, nil)

			w := serve(http.MethodGet, "/api/v1/status")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))

			var result status.Status
			Expect(json.NewDecoder(w.Body).Decode(&result)).To(Succeed())
			Expect(result).To(Equal(*expectedStatus))
		})

		It("returns method not allowed for POST", func() {
			w := serve(http.MethodPost, "/api/v1/status")

			Expect(w.Code).To(Equal(http.StatusMethodNotAllowed))
			Expect(mockStatusChecker.GetStatusCallCount()).To(Equal(0))
		})

		It("returns 500 when Checker fails", func() {
			mockStatusChecker.GetStatusReturns(nil, context.DeadlineExceeded)

			w := serve(http.MethodGet, "/api/v1/status")

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	It("returns 404 for unknown paths", func() {
		w := serve(http.MethodGet, "/api/v1/queue")

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
