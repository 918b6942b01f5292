package theme

import (
	"regexp"
	"strings"
)

var (
	hexColorRegex  = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3,4}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)
	funcColorRegex = regexp.MustCompile(`^(?:rgba?|hsla?)\(\s*[-0-9.%]+\s*,?\s*[-0-9.%]+\s*,?\s*[-0-9.%]+\s*(?:[,/]\s*[0-9.%]+\s*)?\)$`)
	varColorRegex  = regexp.MustCompile(`^var\(--[A-Za-z0-9_-]+\)$`)
	namedColorRe   = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// ValidColor reports whether value looks like a CSS color: hex (#RGB,
// #RGBA, #RRGGBB, #RRGGBBAA), rgb()/rgba()/hsl()/hsla(), a var() reference
// or a bare color keyword.
func ValidColor(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}
	return hexColorRegex.MatchString(v) ||
		funcColorRegex.MatchString(v) ||
		varColorRegex.MatchString(v) ||
		namedColorRe.MatchString(v)
}
