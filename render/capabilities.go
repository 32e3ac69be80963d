package render

import "sort"

// SupportedTypes returns the proxy "type" values Produce accepts, sorted.
func SupportedTypes() []string {
	out := make([]string, 0, len(quanxProducers))
	for t := range quanxProducers {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// IsSupported reports whether Produce would accept a proxy of type typ.
// Callers use it to drop nodes up front instead of handling the error.
func IsSupported(typ string) bool {
	_, ok := quanxProducers[typ]
	return ok
}
