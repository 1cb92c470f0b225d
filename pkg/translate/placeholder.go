package translate

import "strings"

// Param is one named substitution value for FormatText. Parameters are
// applied in slice order, which is why this is a slice element and not
// a map entry.
type Param struct {
	Name  string
	Value string
}

// P is shorthand for constructing a Param.
func P(name, value string) Param {
	return Param{Name: name, Value: value}
}

// ReplaceParams substitutes each {name} placeholder in the template with
// the matching parameter value, in parameter order. The substitution is
// literal and best-effort: unmatched placeholders stay verbatim, unused
// parameters are ignored, and no error is raised for either.
//
// Example:
//
//	template: "Hello, {name}! You have {count} messages."
//	params:   P("name", "Ada"), P("count", "5")
//	returns:  "Hello, Ada! You have 5 messages."
func ReplaceParams(template string, params []Param) string {
	if len(params) == 0 {
		return template
	}

	result := template
	for _, p := range params {
		result = strings.ReplaceAll(result, "{"+p.Name+"}", p.Value)
	}

	return result
}
