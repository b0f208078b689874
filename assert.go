package geom

import "fmt"

// assertf panics with a formatted message if debug assertions are enabled and
// cond is false.
func assertf(cond bool, format string, args ...any) {
	if debugAssertions && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
