package router

import (
	"maps"
	"net/http"
	"path"
	"strings"

	"github.com/vitalvas/waypoint/pattern"
)

// Request is the request a router reads its target from and writes
// extracted parameters to.
type Request interface {
	// Target returns the raw request path.
	Target() string
	// Method returns the request method.
	Method() string
	// SetParam stores a parameter extracted by the router.
	SetParam(name, value string)
}

// BasicRequest is a map-backed Request.
type BasicRequest struct {
	method string
	target string
	params map[string]string
}

// NewRequest returns a request for the given method and target.
func NewRequest(method, target string) *BasicRequest {
	return &BasicRequest{
		method: method,
		target: target,
		params: make(map[string]string),
	}
}

// FromHTTP adapts an *http.Request. The target is the decoded URL path.
func FromHTTP(r *http.Request) *BasicRequest {
	return NewRequest(r.Method, r.URL.Path)
}

// Target returns the raw request path.
func (r *BasicRequest) Target() string {
	return r.target
}

// Method returns the request method.
func (r *BasicRequest) Method() string {
	return r.method
}

// SetParam stores a parameter.
func (r *BasicRequest) SetParam(name, value string) {
	r.params[name] = value
}

// Param returns a stored parameter and whether it exists.
func (r *BasicRequest) Param(name string) (string, bool) {
	v, ok := r.params[name]
	return v, ok
}

// Params returns a copy of the stored parameters.
func (r *BasicRequest) Params() map[string]string {
	return maps.Clone(r.params)
}

// rewrittenRequest overrides the target of a request while passing
// parameters through to it.
type rewrittenRequest struct {
	Request
	target string
}

func (r *rewrittenRequest) Target() string {
	return r.target
}

// normalizeTarget drops the query and fragment, collapses repeated slashes,
// resolves dot segments, trims trailing slashes and ensures one leading
// slash.
func normalizeTarget(target string) string {
	if i := strings.IndexAny(target, "?#"); i >= 0 {
		target = target[:i]
	}
	return pattern.NormalizePath(path.Clean("/" + target))
}
