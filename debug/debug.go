// Package debug holds environment driven debug switches.
//
// Setting CAVATINA_DEBUG_PARSE traces every line the parser commits,
// CAVATINA_DEBUG_STORE traces store insertions and removals and
// CAVATINA_DEBUG_QUERY traces every key a query is evaluated on.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Store bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("CAVATINA_DEBUG_PARSE")
	d.Store = boolEnv("CAVATINA_DEBUG_STORE")
	d.Query = boolEnv("CAVATINA_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}

func Store() bool {
	return d.Store
}

func Query() bool {
	return d.Query
}

// Set overrides the switches read from the environment and returns a
// func restoring the previous ones.
func Set(parse, store, query bool) func() {
	old := *d
	d.Parse, d.Store, d.Query = parse, store, query
	return func() { *d = old }
}

// Logf writes a trace message to stderr. Arguments implementing
// fmt.Stringer are rendered with String.
func Logf(msg string, args ...any) {
	for i := range args {
		if s, ok := args[i].(fmt.Stringer); ok {
			args[i] = s.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
