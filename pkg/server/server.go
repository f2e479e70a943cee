// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"net/http"

	libhttp "github.com/bborbe/http"
	"github.com/bborbe/run"

	"github.com/bborbe/calver-auto-release/pkg/status"
)

//counterfeiter:generate -o ../../mocks/server.go --fake-name Server . Server

// Server serves the release status of the watched repository over HTTP.
type Server interface {
	ListenAndServe(ctx context.Context) error
}

// server implements Server by wrapping a run.Func from libhttp.NewServer.
type server struct {
	runFunc run.Func
}

// NewServer creates a Server listening on addr with the health and status endpoints.
func NewServer(addr string, checker status.Checker) Server {
	return &server{
		runFunc: libhttp.NewServer(addr, NewRouter(checker)),
	}
}

// NewRouter returns the handler for all endpoints.
func NewRouter(checker status.Checker) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/health", libhttp.NewErrorHandler(NewHealthHandler()))
	mux.Handle("/api/v1/status", libhttp.NewErrorHandler(NewStatusHandler(checker)))
	return mux
}

// ListenAndServe executes the underlying run.Func.
func (s *server) ListenAndServe(ctx context.Context) error {
	return s.runFunc(ctx)
}
