package crsgo

import "strings"

// ParseDefinition selects a front-end by the first non-whitespace character
// of text: '+' is a PROJ string, '{' is PROJJSON, anything else is WKT.
func ParseDefinition(text string) (*Params, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, newParseError(text, "empty CRS definition")
	}
	switch trimmed[0] {
	case '+':
		return ParseProjString(trimmed)
	case '{':
		return ParseProjJSON(trimmed)
	default:
		return ParseWKT(trimmed)
	}
}
