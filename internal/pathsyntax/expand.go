package pathsyntax

import (
	"os"
	"regexp"
	"strings"
)

var (
	posixVarPattern   = regexp.MustCompile(`\$(\w+|\{[^}]*\})`)
	windowsVarPattern = regexp.MustCompile(`\$(\w+|\{[^}]*\})|%(\w+)%`)
)

// expandVars replaces every variable reference matched by pattern with its
// value from the environment. References to unset variables are kept verbatim.
func expandVars(path string, pattern *regexp.Regexp) string {
	if !strings.ContainsAny(path, "$%") {
		return path
	}
	return pattern.ReplaceAllStringFunc(path, func(ref string) string {
		var name string
		switch {
		case strings.HasPrefix(ref, "${"):
			name = ref[2 : len(ref)-1]
		case strings.HasPrefix(ref, "$"):
			name = ref[1:]
		default:
			name = ref[1 : len(ref)-1]
		}
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return ref
	})
}
