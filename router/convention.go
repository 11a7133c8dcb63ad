package router

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultName is the controller and action used for missing path segments.
const DefaultName = "Index"

// ConventionRouter derives controller and action names from the path
// without a route table:
//
//	/                      -> Index/Index
//	/user-profile          -> UserProfile/Index
//	/user-profile/edit/7/x -> UserProfile/Edit, params "0"=7 "1"=x
//
// It is safe for concurrent use.
type ConventionRouter struct{}

var _ Router = (*ConventionRouter)(nil)

// NewConvention returns a convention router.
func NewConvention() *ConventionRouter {
	return &ConventionRouter{}
}

// Route maps the first segment to the controller, the second to the action
// and the remaining segments to positional parameters "0", "1", ...
func (r *ConventionRouter) Route(req Request) (Match, error) {
	path := normalizeTarget(req.Target())

	var segments []string
	if path != "/" {
		segments = strings.Split(path[1:], "/")
	}

	names := [2]string{DefaultName, DefaultName}
	for i := 0; i < len(names) && i < len(segments); i++ {
		names[i] = toName(segments[i])
		if names[i] == "" {
			return Match{}, &NotFoundError{Path: path, Method: req.Method()}
		}
	}

	var params map[string]string
	if len(segments) > 2 {
		params = make(map[string]string, len(segments)-2)
		for i, v := range segments[2:] {
			name := strconv.Itoa(i)
			params[name] = v
			req.SetParam(name, v)
		}
	}

	return Match{
		Controller: names[0],
		Action:     names[1],
		Key:        names[0] + "/" + names[1],
		Params:     params,
	}, nil
}

// Reverse joins the lower-camel-cased names and the positional parameters.
// Parameter names must be "0" to "n-1". Index/Index without parameters is
// "/".
func (r *ConventionRouter) Reverse(controller, action string, params map[string]string) (string, error) {
	if controller == "" || action == "" {
		return "", &NotFoundError{Controller: controller, Action: action}
	}

	values := make([]string, len(params))
	for name, v := range params {
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= len(params) || strconv.Itoa(i) != name {
			return "", &MissingParamError{
				Controller: controller,
				Action:     action,
				Params:     sortedKeys(params),
			}
		}
		values[i] = v
	}

	if len(values) == 0 && controller == DefaultName && action == DefaultName {
		return "/", nil
	}

	parts := append([]string{lowerFirst(controller), lowerFirst(action)}, values...)
	return "/" + strings.Join(parts, "/"), nil
}

// toName converts a path segment to a controller or action name by
// splitting it into words and title-casing each one.
func toName(segment string) string {
	caser := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, word := range splitWords(segment) {
		b.WriteString(caser.String(word))
	}
	return b.String()
}

// splitWords splits s at runs of non-alphanumeric characters and before an
// upper-case letter that follows a lower-case letter or digit.
func splitWords(s string) []string {
	var (
		words []string
		start = -1
		prev  rune
	)
	for i, c := range s {
		alnum := unicode.IsLetter(c) || unicode.IsDigit(c)
		switch {
		case !alnum:
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
		case start < 0:
			start = i
		case unicode.IsUpper(c) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			words = append(words, s[start:i])
			start = i
		}
		prev = c
	}
	if start >= 0 {
		words = append(words, s[start:])
	}
	return words
}

// lowerFirst lower-cases the first character of s.
func lowerFirst(s string) string {
	c, size := utf8.DecodeRuneInString(s)
	if c == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(c)) + s[size:]
}
