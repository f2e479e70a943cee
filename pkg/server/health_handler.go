// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"net/http"

	"github.com/bborbe/errors"
	libhttp "github.com/bborbe/http"
)

// NewHealthHandler creates a handler for the /health endpoint.
// It reports ok as long as the daemon serves requests.
func NewHealthHandler() libhttp.WithError {
	return libhttp.WithErrorFunc(
		func(ctx context.Context, resp http.ResponseWriter, req *http.Request) error {
			switch req.Method {
			case http.MethodGet, http.MethodHead:
			default:
				return libhttp.WrapWithStatusCode(
					errors.Errorf(ctx, "method %s not allowed", req.Method),
					http.StatusMethodNotAllowed,
				)
			}

			resp.Header().Set("Content-Type", "application/json")
			resp.WriteHeader(http.StatusOK)
			_, _ = resp.Write([]byte(`{"status":"ok"}`))
			return nil
		},
	)
}
