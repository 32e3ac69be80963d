package model

import (
	"fmt"
	"strings"
)

// Proxy is a normalized proxy node using Clash field names
// ("server", "port", "skip-cert-verify", "ws-opts", ...).
//
// It is a map rather than a struct because the six supported shapes share
// almost nothing beyond server/port/name, and "absent" must stay
// distinguishable from a zero value. Producers treat it as read-only.
type Proxy map[string]any

// Type returns the "type" discriminant, or "" when it is missing or not a string.
func (p Proxy) Type() string {
	s, _ := p["type"].(string)
	return s
}

// Name returns the node name used as the output tag.
func (p Proxy) Name() string {
	return p.String("name")
}

// Lookup resolves a dotted path such as "ws-opts.headers.Host".
//
// Every segment is checked before descending, so a missing or non-object
// intermediate value yields ok=false instead of a panic. A nil leaf counts as
// absent.
func (p Proxy) Lookup(path string) (any, bool) {
	var cur any = map[string]any(p)
	for _, key := range strings.Split(path, ".") {
		v, ok := child(cur, key)
		if !ok || v == nil {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

// Has reports whether path resolves to a non-nil value.
func (p Proxy) Has(path string) bool {
	_, ok := p.Lookup(path)
	return ok
}

// String renders the value at path the way it appears in a config line;
// absent values render as "".
func (p Proxy) String(path string) string {
	v, _ := p.Lookup(path)
	return FormatValue(v)
}

// Truthy reports whether the value at path is set to something other than
// false, "", 0 or nil.
func (p Proxy) Truthy(path string) bool {
	v, ok := p.Lookup(path)
	if !ok {
		return false
	}
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x != ""
	}
	if f, ok := number(v); ok {
		return f != 0
	}
	return true
}

// IsZero reports whether the value at path is numerically equal to 0.
// Strings such as "0" are not numbers and report false.
func (p Proxy) IsZero(path string) bool {
	v, ok := p.Lookup(path)
	if !ok {
		return false
	}
	f, ok := number(v)
	return ok && f == 0
}

func child(v any, key string) (any, bool) {
	switch m := v.(type) {
	case map[string]any:
		x, ok := m[key]
		return x, ok
	case Proxy:
		x, ok := m[key]
		return x, ok
	case map[string]string:
		x, ok := m[key]
		return x, ok
	case map[any]any:
		x, ok := m[key]
		return x, ok
	default:
		return nil, false
	}
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

// FormatValue renders a decoded YAML/JSON scalar for a config line.
// Integral floats (JSON numbers) print without a fraction, lists are joined
// with "," and nil renders as "".
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float32:
		return FormatValue(float64(x))
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprint(x)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = FormatValue(e)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(x, ",")
	default:
		return fmt.Sprint(x)
	}
}
