package engine

import "fmt"

// assert panics on a broken caller contract when built with the slidedebug
// tag. Release builds fall through to the caller's defensive path.
func assert(cond bool, format string, args ...any) {
	if debugAssertions && !cond {
		panic(fmt.Sprintf("engine: "+format, args...))
	}
}
