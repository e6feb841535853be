package internal

import (
	"maps"

	starlarkJSON "go.starlark.net/lib/json"
	starlarkMath "go.starlark.net/lib/math"
	starlarkTime "go.starlark.net/lib/time"
	starlarkLib "go.starlark.net/starlark"
)

// Module namespaces shared by the compiler and the evaluator, so a script that
// compiles also resolves the same names at run time.
const (
	namespaceJSON = "json"
	namespaceMath = "math"
	namespaceTime = "time"
)

// StarlarkModules returns a copy of the Starlark universe plus the json, math
// and time modules.
func StarlarkModules() starlarkLib.StringDict {
	universe := maps.Clone(starlarkLib.Universe)

	universe[namespaceJSON] = starlarkJSON.Module
	universe[namespaceMath] = starlarkMath.Module
	universe[namespaceTime] = starlarkTime.Module

	return universe
}
