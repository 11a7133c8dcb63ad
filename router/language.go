package router

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Languages describes the languages a LanguageRouter accepts.
type Languages struct {
	// Default is the language used when the path has no language segment.
	// Paths in the default language are built without a prefix.
	Default string
	// Usable lists the language codes recognised as a first path segment.
	// It must contain Default.
	Usable []string
}

func (l Languages) validate() error {
	if len(l.Usable) == 0 {
		return configError(LanguagesKey, "no usable languages", nil)
	}
	for _, code := range l.Usable {
		if code == "" || strings.Contains(code, "/") {
			return configError(LanguagesKey, fmt.Sprintf("invalid language %q", code), nil)
		}
		if _, err := language.Parse(code); err != nil {
			return configError(LanguagesKey, fmt.Sprintf("invalid language %q", code), err)
		}
	}
	if !slices.Contains(l.Usable, l.Default) {
		return configError(LanguagesKey, fmt.Sprintf("default language %q is not usable", l.Default), nil)
	}
	return nil
}

// TranslatedTables holds the route tables of a translated LanguageRouter.
type TranslatedTables struct {
	// Shared routes are added to every language table under the same keys.
	Shared *Table
	// Languages maps each usable language to its own routes.
	Languages map[string]*Table
}

// LanguageReverser is a Router that builds paths in a chosen language.
type LanguageReverser interface {
	Router
	ReverseInLanguage(controller, action, lang string, params map[string]string) (string, error)
	Language() string
}

// LanguageRouter decorates table routing with a language path segment.
//
// The current language is detected once, from the first segment of the
// request the router is built for. Route strips a recognised language
// segment before delegating; Reverse prefixes the current language unless it
// is the default one.
//
// In the translated variant each language has its own table; otherwise all
// languages share one.
type LanguageRouter struct {
	mu      sync.Mutex
	current string

	def    string
	usable []string

	shared  *TableRouter
	routers map[string]*TableRouter
}

var _ LanguageReverser = (*LanguageRouter)(nil)

// NewLanguage returns a language router sharing base between all languages.
func NewLanguage(req Request, base *TableRouter, langs Languages, opts ...Option) (*LanguageRouter, error) {
	if err := langs.validate(); err != nil {
		return nil, err
	}
	if base == nil {
		return nil, configError(RoutesKey, "missing route table", nil)
	}
	o := newOptions(opts)

	r := newLanguageRouter(req, langs)
	r.shared = base

	o.logger.Debug("language detected", "language", r.current, "translated", false)

	return r, nil
}

// NewTranslated returns a language router with one table per usable
// language. Each language table is its own entries followed by the shared
// entries it does not override. Every usable language needs a table.
func NewTranslated(req Request, tables TranslatedTables, langs Languages, opts ...Option) (*LanguageRouter, error) {
	if err := langs.validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)

	r := newLanguageRouter(req, langs)
	r.routers = make(map[string]*TableRouter, len(langs.Usable))

	for _, lang := range langs.Usable {
		own, ok := tables.Languages[lang]
		if !ok || own == nil {
			return nil, configError(TranslatedRoutesKey+"."+lang, "missing translated routes", nil)
		}
		rt, err := New(own.withShared(tables.Shared), o.forward()...)
		if err != nil {
			return nil, err
		}
		r.routers[lang] = rt
	}

	for lang := range tables.Languages {
		if !slices.Contains(langs.Usable, lang) {
			o.logger.Debug("ignoring routes of unusable language", "language", lang)
		}
	}

	o.logger.Debug("language detected", "language", r.current, "translated", true)

	return r, nil
}

func newLanguageRouter(req Request, langs Languages) *LanguageRouter {
	r := &LanguageRouter{
		def:    langs.Default,
		usable: slices.Clone(langs.Usable),
	}
	r.current, _ = r.split(normalizeTarget(req.Target()))
	return r
}

// Language returns the current language.
func (r *LanguageRouter) Language() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// DefaultLanguage returns the default language.
func (r *LanguageRouter) DefaultLanguage() string {
	return r.def
}

// UsableLanguages returns the usable languages.
func (r *LanguageRouter) UsableLanguages() []string {
	return slices.Clone(r.usable)
}

// Route strips a leading language segment from the request path and routes
// the rest against that language's table.
func (r *LanguageRouter) Route(req Request) (Match, error) {
	lang, rest := r.split(normalizeTarget(req.Target()))
	return r.routerFor(lang).Route(&rewrittenRequest{Request: req, target: rest})
}

// Reverse builds a path in the current language.
func (r *LanguageRouter) Reverse(controller, action string, params map[string]string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reverse(controller, action, params)
}

// ReverseInLanguage builds a path as if lang were the current language.
// The current language is restored on every exit path.
func (r *LanguageRouter) ReverseInLanguage(controller, action, lang string, params map[string]string) (string, error) {
	if !slices.Contains(r.usable, lang) {
		return "", configError(LanguagesKey, fmt.Sprintf("language %q is not usable", lang), nil)
	}
	defer r.switchLanguage(lang)()
	return r.reverse(controller, action, params)
}

// switchLanguage locks the router and sets the current language. The
// returned func restores the previous language and unlocks.
func (r *LanguageRouter) switchLanguage(lang string) (restore func()) {
	r.mu.Lock()
	prev := r.current
	r.current = lang
	return func() {
		r.current = prev
		r.mu.Unlock()
	}
}

// reverse must be called with r.mu held.
func (r *LanguageRouter) reverse(controller, action string, params map[string]string) (string, error) {
	path, err := r.routerFor(r.current).Reverse(controller, action, params)
	if err != nil {
		return "", err
	}
	if r.current == r.def {
		return path, nil
	}
	if path == "/" {
		return "/" + r.current, nil
	}
	return "/" + r.current + path, nil
}

func (r *LanguageRouter) routerFor(lang string) *TableRouter {
	if r.shared != nil {
		return r.shared
	}
	return r.routers[lang]
}

// split returns the language named by the first segment of a normalized
// path and the path without it. Paths without a usable language segment
// belong to the default language and are returned unchanged.
func (r *LanguageRouter) split(path string) (string, string) {
	seg, rest, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if seg == "" || !slices.Contains(r.usable, seg) {
		return r.def, path
	}
	return seg, "/" + rest
}
