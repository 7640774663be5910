package validator

import "strings"

// ValidateConfigShape validates YAML syntax and then checks the parsed
// mapping for the top-level keys a working Clash configuration needs:
// an HTTP listening port, a SOCKS listening port, at least one proxy
// source, and routing rules. Each missing key appends one warning
// line. Shape warnings are advisory only; Valid stays true for any
// syntactically valid document.
func ValidateConfigShape(text string) Result {
	result := Validate(text)
	if !result.Valid {
		return result
	}

	mapping, err := Parse(text)
	if err != nil {
		return Result{Message: "cannot parse configuration"}
	}
	keys := topLevelKeys(mapping)

	var warnings []string
	if !keys["port"] {
		warnings = append(warnings, `missing "port": no HTTP listening port is declared`)
	}
	if !keys["socks-port"] {
		warnings = append(warnings, `missing "socks-port": no SOCKS listening port is declared`)
	}
	if !keys["proxies"] && !keys["proxy-providers"] {
		warnings = append(warnings, `missing "proxies" or "proxy-providers": no proxy sources are declared`)
	}
	if !keys["rules"] {
		warnings = append(warnings, `missing "rules": no routing rules are declared`)
	}

	return Result{Valid: true, Message: strings.Join(warnings, "\n")}
}
