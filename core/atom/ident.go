package atom

import "github.com/dlclark/regexp2"

// identPattern accepts the identifier grammar used for variable, operator,
// and ruleset names: a letter or underscore, then letters/digits/underscore,
// so a name can never start with a digit (which would be ambiguous against
// integer literals in toParseString output). The (?!\d) lookahead repeats
// that leading-digit check; the character class alone already enforces it.
var identPattern = regexp2.MustCompile(`^(?!\d)[A-Za-z_][A-Za-z0-9_]*$`, regexp2.None)

// ValidIdentifier reports whether name is a syntactically valid variable,
// operator, or ruleset identifier. Parsers are expected to only ever
// construct atoms with valid names (spec section 6); this is exposed so
// registries (core/operator, core/rules) can reject malformed names at
// registration time instead of producing atoms that could never round-trip
// through toParseString.
func ValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	ok, err := identPattern.MatchString(name)
	return err == nil && ok
}
