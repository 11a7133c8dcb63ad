package router

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"

	"github.com/vitalvas/waypoint/config"
)

// Default configuration keys.
const (
	// RoutesKey holds the route table of a TableRouter or a non-translated
	// LanguageRouter.
	RoutesKey = "routes"
	// LanguagesKey holds a section with "default" and "usable" entries.
	LanguagesKey = "languages"
	// SharedRoutesKey holds routes added to every translated table.
	SharedRoutesKey = "not_translated_routes"
	// TranslatedRoutesKey holds one route table per language code.
	TranslatedRoutesKey = "translated_routes"
)

// Config is a configuration source. *config.Store and config.Section
// implement it.
//
// Route tables must be stored as ordered mappings (config.Section) whose
// values are a pattern string or a list of pattern strings.
type Config interface {
	Get(key string) (any, bool)
}

var (
	_ Config = (*config.Store)(nil)
	_ Config = config.Section(nil)
)

// TableFromConfig loads the route table stored under key.
func TableFromConfig(cfg Config, key string) (*Table, error) {
	v, ok := cfg.Get(key)
	if !ok {
		return nil, configError(key, "missing route table", nil)
	}
	return tableFromValue(key, v)
}

func tableFromValue(key string, v any) (*Table, error) {
	switch v := v.(type) {
	case *Table:
		return v, nil
	case []Entry:
		return NewTable(v...)
	case config.Section:
		entries := make([]Entry, 0, len(v))
		for _, item := range v {
			patterns, err := toPatterns(item.Value)
			if err != nil {
				return nil, configError(key+"."+item.Key, "invalid route patterns", err)
			}
			entries = append(entries, Entry{Key: item.Key, Patterns: patterns})
		}
		return NewTable(entries...)
	default:
		return nil, configError(key, fmt.Sprintf("expected an ordered mapping, got %T", v), nil)
	}
}

// toPatterns accepts a single pattern or a list of alternatives.
func toPatterns(v any) ([]string, error) {
	switch v.(type) {
	case nil:
		return nil, errors.New("no patterns")
	case []any, []string:
		return cast.ToStringSliceE(v)
	default:
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}
}

// LanguagesFromConfig loads the section stored under key, which must hold
// a "default" language and a "usable" list.
func LanguagesFromConfig(cfg Config, key string) (Languages, error) {
	v, ok := cfg.Get(key)
	if !ok {
		return Languages{}, configError(key, "missing languages", nil)
	}
	sec, ok := v.(Config)
	if !ok {
		return Languages{}, configError(key, fmt.Sprintf("expected a mapping, got %T", v), nil)
	}

	rawDefault, _ := sec.Get("default")
	def, err := cast.ToStringE(rawDefault)
	if err != nil || def == "" {
		return Languages{}, configError(key+".default", "missing default language", err)
	}

	rawUsable, ok := sec.Get("usable")
	if !ok || rawUsable == nil {
		return Languages{}, configError(key+".usable", "missing usable languages", nil)
	}
	usable, err := cast.ToStringSliceE(rawUsable)
	if err != nil || len(usable) == 0 {
		return Languages{}, configError(key+".usable", "missing usable languages", err)
	}

	return Languages{Default: def, Usable: usable}, nil
}

// NewFromConfig returns a TableRouter for the table stored under RoutesKey.
func NewFromConfig(cfg Config, opts ...Option) (*TableRouter, error) {
	o := newOptions(opts)

	table, err := TableFromConfig(cfg, RoutesKey)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("route table loaded", "key", RoutesKey, "routes", table.Len())

	return New(table, o.forward()...)
}

// NewLanguageFromConfig returns a non-translated LanguageRouter for the
// table under RoutesKey and the languages under LanguagesKey.
func NewLanguageFromConfig(req Request, cfg Config, opts ...Option) (*LanguageRouter, error) {
	o := newOptions(opts)

	langs, err := LanguagesFromConfig(cfg, LanguagesKey)
	if err != nil {
		return nil, err
	}
	base, err := NewFromConfig(cfg, o.forward()...)
	if err != nil {
		return nil, err
	}

	return NewLanguage(req, base, langs, o.forward()...)
}

// NewTranslatedFromConfig returns a translated LanguageRouter. Shared routes
// are read from SharedRoutesKey when present; TranslatedRoutesKey must hold
// a table for every usable language.
func NewTranslatedFromConfig(req Request, cfg Config, opts ...Option) (*LanguageRouter, error) {
	o := newOptions(opts)

	langs, err := LanguagesFromConfig(cfg, LanguagesKey)
	if err != nil {
		return nil, err
	}

	var shared *Table
	if v, ok := cfg.Get(SharedRoutesKey); ok {
		if shared, err = tableFromValue(SharedRoutesKey, v); err != nil {
			return nil, err
		}
	}

	v, ok := cfg.Get(TranslatedRoutesKey)
	if !ok {
		return nil, configError(TranslatedRoutesKey, "missing translated routes", nil)
	}
	sec, ok := v.(Config)
	if !ok {
		return nil, configError(TranslatedRoutesKey, fmt.Sprintf("expected a mapping, got %T", v), nil)
	}

	tables := make(map[string]*Table, len(langs.Usable))
	for _, lang := range langs.Usable {
		key := TranslatedRoutesKey + "." + lang
		lv, ok := sec.Get(lang)
		if !ok {
			return nil, configError(key, "missing translated routes", nil)
		}
		if tables[lang], err = tableFromValue(key, lv); err != nil {
			return nil, err
		}
		o.logger.Debug("route table loaded", "key", key, "routes", tables[lang].Len())
	}

	return NewTranslated(req, TranslatedTables{Shared: shared, Languages: tables}, langs, o.forward()...)
}
