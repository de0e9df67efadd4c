package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/papapumpkin/launchplot/internal/launch"
)

// GroupFunc returns the group label of a launch.
type GroupFunc func(launch.Record) string

// Unknown labels launches whose grouping field is empty.
const Unknown = "未知"

var selectors = map[string]GroupFunc{
	"country":   func(r launch.Record) string { return r.Manufacturer },
	"provider":  func(r launch.Record) string { return r.LaunchProvider },
	"launcher":  func(r launch.Record) string { return r.Launcher },
	"location":  func(r launch.Record) string { return r.Location },
	"operator":  func(r launch.Record) string { return r.PayloadOperator },
	"developer": func(r launch.Record) string { return r.PayloadDeveloper },
}

// Selector returns the built-in GroupFunc registered under name. Empty
// field values are grouped under Unknown.
func Selector(name string) (GroupFunc, error) {
	fn, ok := selectors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown group selector %q (want one of %s)", name, strings.Join(SelectorNames(), ", "))
	}
	return func(r launch.Record) string {
		if v := fn(r); v != "" {
			return v
		}
		return Unknown
	}, nil
}

// SelectorNames returns the built-in selector names, sorted.
func SelectorNames() []string {
	names := make([]string, 0, len(selectors))
	for n := range selectors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
