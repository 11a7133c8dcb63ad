package router

import (
	"fmt"
	"slices"

	"github.com/vitalvas/waypoint/pattern"
)

// Router maps requests to controller actions and back.
type Router interface {
	// Route finds the controller action handling req and writes extracted
	// parameters to it. Returns a *NotFoundError when nothing matches.
	Route(req Request) (Match, error)

	// Reverse builds the path that routes to controller/action with params.
	// Returns a *NotFoundError for unknown actions and a
	// *MissingParamError when no pattern accepts params.
	Reverse(controller, action string, params map[string]string) (string, error)
}

// Match is the result of forward routing.
type Match struct {
	Controller string
	Action     string
	// Key is the "Controller/Action" table key.
	Key string
	// Pattern is the raw pattern that matched, empty for convention routing.
	Pattern string
	// Params holds the extracted parameters, also written to the request.
	Params map[string]string
}

// route is a compiled table entry.
type route struct {
	key        string
	controller string
	action     string
	matchers   []*pattern.Matcher
}

// TableRouter routes through an ordered route table. It is safe for
// concurrent use.
type TableRouter struct {
	table  *Table
	routes []route
	index  map[string]int
}

var _ Router = (*TableRouter)(nil)

// New compiles every pattern of table and returns a router for it.
// Compile errors are returned here rather than at request time.
func New(table *Table, opts ...Option) (*TableRouter, error) {
	o := newOptions(opts)

	r := &TableRouter{
		table:  table,
		routes: make([]route, 0, table.Len()),
		index:  make(map[string]int, table.Len()),
	}

	var n int
	for _, key := range table.keys {
		controller, action, err := splitKey(key)
		if err != nil {
			return nil, err
		}

		raws := table.patterns[key]
		rt := route{
			key:        key,
			controller: controller,
			action:     action,
			matchers:   make([]*pattern.Matcher, 0, len(raws)),
		}
		for _, raw := range raws {
			m, err := o.cache.Compile(raw)
			if err != nil {
				return nil, fmt.Errorf("router: route %q: %w", key, err)
			}
			rt.matchers = append(rt.matchers, m)
		}
		n += len(raws)

		r.index[key] = len(r.routes)
		r.routes = append(r.routes, rt)
	}

	o.logger.Debug("route table compiled", "routes", len(r.routes), "patterns", n)

	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(table *Table, opts ...Option) *TableRouter {
	r, err := New(table, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Table returns the route table.
func (r *TableRouter) Table() *Table {
	return r.table
}

// Route tries the table in insertion order and each entry's patterns in
// list order. Patterns restricted to another method are skipped before any
// matching. The first match wins.
func (r *TableRouter) Route(req Request) (Match, error) {
	path := normalizeTarget(req.Target())
	method := req.Method()

	for _, rt := range r.routes {
		for _, m := range rt.matchers {
			if !m.AllowsMethod(method) {
				continue
			}
			params, ok := m.Match(path)
			if !ok {
				continue
			}

			for _, name := range m.Pattern().Names() {
				req.SetParam(name, params[name])
			}

			return Match{
				Controller: rt.controller,
				Action:     rt.action,
				Key:        rt.key,
				Pattern:    m.Pattern().Raw(),
				Params:     params,
			}, nil
		}
	}

	return Match{}, &NotFoundError{Path: path, Method: method}
}

// Reverse returns the first pattern of controller/action whose placeholders
// are exactly the keys of params, with the values substituted. Method
// prefixes are ignored.
func (r *TableRouter) Reverse(controller, action string, params map[string]string) (string, error) {
	i, ok := r.index[controller+"/"+action]
	if !ok {
		return "", &NotFoundError{Controller: controller, Action: action}
	}

	rt := r.routes[i]
	for _, m := range rt.matchers {
		if path, ok := m.Pattern().Expand(params); ok {
			return path, nil
		}
	}

	candidates := make([][]string, len(rt.matchers))
	for i, m := range rt.matchers {
		candidates[i] = m.Pattern().Names()
	}

	return "", &MissingParamError{
		Controller: controller,
		Action:     action,
		Params:     sortedKeys(params),
		Candidates: candidates,
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
