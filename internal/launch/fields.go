package launch

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"github.com/papapumpkin/launchplot/internal/record"
)

// accessor yields a candidate value for a field, "" when it has none.
type accessor func() string

// firstOf returns the first non-empty value produced by accessors.
func firstOf(accessors ...accessor) string {
	for _, get := range accessors {
		if v := get(); v != "" {
			return v
		}
	}
	return ""
}

// fieldReader reads trimmed values out of a raw block.
type fieldReader struct {
	block record.RawBlock
}

func (f fieldReader) get(key string) string {
	return strings.TrimSpace(f.block.Get(key))
}

func (f fieldReader) key(key string) accessor {
	return func() string { return f.get(key) }
}

// keys builds one accessor per key, in order.
func (f fieldReader) keys(keys ...string) []accessor {
	out := make([]accessor, len(keys))
	for i, k := range keys {
		out[i] = f.key(k)
	}
	return out
}

func (f fieldReader) chain(keys ...string) string {
	return firstOf(f.keys(keys...)...)
}

// joined returns the non-empty values of keys joined by sep.
func (f fieldReader) joined(sep string, keys ...string) accessor {
	return func() string {
		var parts []string
		for _, k := range keys {
			if v := f.get(k); v != "" {
				parts = append(parts, v)
			}
		}
		return strings.Join(parts, sep)
	}
}

var (
	tonnePattern  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*吨`)
	numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ExtractTonnes returns every "<number>吨" quantity in s, in order.
func ExtractTonnes(s string) []float64 {
	var out []float64
	for _, m := range tonnePattern.FindAllStringSubmatch(narrow(s), -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// ExtractNumbers returns every unsigned decimal number in s, in order.
func ExtractNumbers(s string) []float64 {
	var out []float64
	for _, m := range numberPattern.FindAllString(narrow(s), -1) {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// payloadMass reads masses from the explicit mass field when present and
// from the payload description otherwise.
func payloadMass(explicit, info string) []float64 {
	if explicit != "" {
		if strings.Contains(explicit, "吨") {
			return ExtractTonnes(explicit)
		}
		return ExtractNumbers(explicit)
	}
	return ExtractTonnes(info)
}

func narrow(s string) string {
	return width.Narrow.String(s)
}
