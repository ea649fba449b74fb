// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// routeNotFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router, so that an unsupported method on a known path is
// indistinguishable from an unknown path.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
