package util

import "fmt"

// Must panics if err is non-nil. It is meant for package-level
// initialization of values that cannot fail at runtime.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(fmt.Sprintf("util.Must: %v", err))
	}

	return v
}
