package schemadoc

import (
	"regexp"
	"strings"
)

// --- Check constraint parsing ---
//
// Enumeration-style checks come in two textual shapes:
//
//	as written:  status IN ('active', 'harvested', 'failed')
//	as Postgres renders them back:
//	  (status)::text = ANY ((ARRAY['active'::character varying, ...])::text[])
//
// Both reduce to "column compared against a list of string literals".
// Anything else is passed through verbatim (minus the CHECK wrapper).

var (
	checkWrapper   = regexp.MustCompile(`(?is)^\s*CHECK\s*\((.*)\)\s*$`)
	inListPattern  = regexp.MustCompile(`(?is)^[\s(]*\(?\s*(\w+)\s*\)?\s*(?:::\w+(?:\s+\w+)*)?\s+IN\s*\((.*?)\)[\s)]*$`)
	anyListPattern = regexp.MustCompile(`(?is)^[\s(]*\(?\s*(\w+)\s*\)?\s*(?:::\w+(?:\s+\w+)*)?\s*=\s*ANY\s*\(\(?\s*ARRAY\[(.*?)\]`)
	literalPattern = regexp.MustCompile(`'((?:[^']|'')*)'`)
)

// StripCheck removes a surrounding "CHECK (...)" wrapper, if present,
// and trims whitespace. Non-wrapped definitions pass through trimmed.
func StripCheck(definition string) string {
	if m := checkWrapper.FindStringSubmatch(definition); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(definition)
}

// ParseEnumValues extracts the allowed string literals from an
// enumeration-shaped check definition. It reports ok=false when the
// definition does not match either enumeration shape, in which case the
// caller should fall back to showing the raw expression.
func ParseEnumValues(definition string) (values []string, ok bool) {
	expr := StripCheck(definition)

	var list string
	if m := inListPattern.FindStringSubmatch(expr); m != nil {
		list = m[2]
	} else if m := anyListPattern.FindStringSubmatch(expr); m != nil {
		list = m[2]
	} else {
		return nil, false
	}

	for _, lit := range literalPattern.FindAllStringSubmatch(list, -1) {
		values = append(values, strings.ReplaceAll(lit[1], "''", "'"))
	}
	if len(values) == 0 {
		return nil, false
	}
	return values, true
}
