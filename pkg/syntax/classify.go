package syntax

import (
	"strconv"
	"strings"
)

// booleanLiterals are the YAML 1.1 boolean forms, matched
// case-insensitively.
var booleanLiterals = map[string]bool{
	"true":  true,
	"false": true,
	"yes":   true,
	"no":    true,
	"on":    true,
	"off":   true,
}

// nullLiterals are the null forms, matched case-insensitively.
var nullLiterals = map[string]bool{
	"null": true,
	"~":    true,
}

// classifyValue classifies an already-trimmed scalar value. Priority
// order: boolean literal, null literal, number, then string. Quoted
// strings and inline flow collections all fall through to string; no
// attempt is made to unwrap quotes.
func classifyValue(trimmed string) Kind {
	lower := strings.ToLower(trimmed)
	if booleanLiterals[lower] {
		return KindBoolean
	}
	if nullLiterals[lower] {
		return KindNull
	}
	if _, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return KindNumber
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return KindNumber
	}
	return KindString
}
