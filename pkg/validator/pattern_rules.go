package validator

import (
	"fmt"
	"regexp"
)

// MatchesPattern validates a string against a precompiled pattern.
// Callers compile the pattern once, at descriptor construction time.
func MatchesPattern(pattern *regexp.Regexp) Rule {
	return Rule{
		Name: "pattern",
		Check: func(value any) bool {
			s, ok := value.(string)
			return ok && pattern.MatchString(s)
		},
		Message:        fmt.Sprintf("must match %s pattern", pattern),
		TranslationKey: "validation.regex_pattern",
		TranslationValues: map[string]any{
			"pattern": pattern.String(),
		},
	}
}
