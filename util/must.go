package util

import "fmt"

// Must returns v, or panics if err is set. It is meant for values that
// can only fail through a programming error, like embedded assets.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(fmt.Sprintf("util.Must: %v", err))
	}

	return v
}
