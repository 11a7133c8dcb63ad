// Package router maps request paths to controller actions and builds paths
// for controller actions.
//
// # Route Tables
//
// A Table is an ordered mapping from "Controller/Action" keys to one route
// pattern or a list of alternatives (see package pattern for the syntax):
//
//	table := router.MustTable(
//	    router.Routes("User/View", "/user/{id:num}"),
//	    router.Routes("User/List", "[GET]/users", "[POST]/users"),
//	)
//	r, err := router.New(table)
//
// New compiles every pattern, so authoring errors surface at construction.
//
// # Forward Routing
//
// Route tries entries in insertion order and alternatives in list order.
// Alternatives restricted to another method are skipped. The first match
// wins and its parameters are written to the request:
//
//	req := router.NewRequest(http.MethodGet, "/user/42")
//	m, err := r.Route(req)
//	// m.Controller == "User", m.Action == "View"
//	id, _ := req.Param("id") // "42"
//
// Request paths are normalized first: the query is dropped, trailing
// slashes are trimmed and one leading slash is kept. When nothing matches,
// Route returns a *NotFoundError, which matches ErrNotFound with errors.Is.
//
// # Reverse Routing
//
// Reverse picks the first alternative whose placeholders are exactly the
// supplied parameter names and substitutes the values:
//
//	path, err := r.Reverse("User", "View", map[string]string{"id": "7"})
//	// path == "/user/7"
//
// Method prefixes are ignored. An unknown controller/action returns a
// *NotFoundError; parameters that fit no alternative return a
// *MissingParamError (ErrMissingParam).
//
// # Language Routing
//
// LanguageRouter adds a language path segment. It detects the current
// language from the first segment of the request it is built for:
//
//	langs := router.Languages{Default: "en", Usable: []string{"en", "fr"}}
//	lr, err := router.NewLanguage(req, r, langs)
//
// NewTranslated gives each language its own table, seeded with shared
// routes:
//
//	lr, err := router.NewTranslated(req, router.TranslatedTables{
//	    Shared:    shared,
//	    Languages: map[string]*router.Table{"en": en, "fr": fr},
//	}, langs)
//
// Paths built for the default language carry no prefix. ReverseInLanguage
// builds a path in another language and restores the current language
// afterwards, including on error.
//
// # Convention Routing
//
// ConventionRouter needs no table. The first two path segments name the
// controller and action and the rest become positional parameters:
//
//	/user-profile/edit/7 -> UserProfile/Edit, "0"="7"
//
// # Configuration
//
// NewFromConfig, NewLanguageFromConfig and NewTranslatedFromConfig read
// tables and languages from a Config such as *config.Store:
//
//	routes:
//	  User/View: /user/{id:num}
//	  User/List: ["[GET]/users", "[POST]/users"]
//	languages:
//	  default: en
//	  usable: [en, fr]
//
// Missing or malformed settings return a *ConfigurationError
// (ErrConfiguration).
//
// # Concurrency
//
// Tables are immutable. TableRouter and ConventionRouter are safe for
// concurrent use. LanguageRouter serializes access to its current language.
package router
