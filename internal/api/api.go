// Package api is the single source of truth for the HTTP surface: every
// operation's method and path template lives here and is consumed verbatim by
// both the server-side router (handlers.Register) and the Client, so the two
// sides can never drift on URL construction.
//
// Path templates use the :param syntax, which is also the router's native
// parameter syntax.
package api

import (
	"net/http"
	"strings"
)

// Operation identifies one HTTP endpoint.
type Operation struct {
	Method string
	Path   string
}

// Packages holds the package catalog operations.
var Packages = struct {
	// List returns all packages; optional ?category= query filter.
	List Operation
	// Get returns a single package by id.
	Get Operation
	// Create inserts a new package (admin use).
	Create Operation
}{
	List:   Operation{Method: http.MethodGet, Path: "/api/packages"},
	Get:    Operation{Method: http.MethodGet, Path: "/api/packages/:id"},
	Create: Operation{Method: http.MethodPost, Path: "/api/packages"},
}

// Inquiries holds the customer inquiry operations.
var Inquiries = struct {
	// Create records a follow-up request about a package.
	Create Operation
}{
	Create: Operation{Method: http.MethodPost, Path: "/api/inquiries"},
}

// BuildPath substitutes :name parameters in a path template with the values
// in params. Unknown params are ignored; unmatched placeholders are left as
// is. Pure string manipulation, no network I/O.
func BuildPath(path string, params map[string]string) string {
	for key, value := range params {
		path = strings.ReplaceAll(path, ":"+key, value)
	}
	return path
}
