package pattern

// ParamType is the declared type of a parameter token.
type ParamType string

const (
	TypeNum   ParamType = "num"
	TypeAlpha ParamType = "alpha"
	TypeAlnum ParamType = "alnum"
	TypeEnum  ParamType = "enum"
	TypeRegex ParamType = "regex"
)

// typeSpec holds the fixed regexp fragment of a type, or marks the type as
// taking its fragment from the token options.
type typeSpec struct {
	fragment    string
	fromOptions bool
}

// paramTypes maps type names to their regexp fragments.
// Used in token definitions: {name:type} and {name:type(options)}.
var paramTypes = map[ParamType]typeSpec{
	TypeNum:   {fragment: `\d+`},
	TypeAlpha: {fragment: `[a-zA-Z]+`},
	TypeAlnum: {fragment: `[a-zA-Z0-9]+`},
	TypeEnum:  {fromOptions: true},
	TypeRegex: {fromOptions: true},
}

// Valid reports whether t is a known parameter type.
func (t ParamType) Valid() bool {
	_, ok := paramTypes[t]
	return ok
}

// TakesOptions reports whether t builds its fragment from token options.
func (t ParamType) TakesOptions() bool {
	return paramTypes[t].fromOptions
}

// Fragment returns the regexp fragment matching a value of p.
// enum and regex options are used verbatim.
func Fragment(p Param) string {
	spec, ok := paramTypes[p.Type]
	if !ok {
		return ""
	}
	if spec.fromOptions {
		return p.Options
	}
	return spec.fragment
}
