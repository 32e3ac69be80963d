package render

import (
	"strings"

	"github.com/John-Robertt/qxline/model"
)

// lineBuilder accumulates the fragments of one output line in call order.
// Every fragment after the first carries its own leading comma.
type lineBuilder struct {
	proxy model.Proxy
	b     strings.Builder
}

func newLineBuilder(p model.Proxy) *lineBuilder {
	return &lineBuilder{proxy: p}
}

func (l *lineBuilder) append(fragment string) {
	l.b.WriteString(fragment)
}

// appendIfPresent emits fragment() only when path resolves to a non-nil value.
// The fragment is built after the check, so it may dereference nested options
// under path freely.
func (l *lineBuilder) appendIfPresent(path string, fragment func() string) {
	if !l.proxy.Has(path) {
		return
	}
	l.b.WriteString(fragment())
}

// field is the common appendIfPresent form: ",key=<value at path>".
func (l *lineBuilder) field(key, path string) {
	l.appendIfPresent(path, func() string {
		return "," + key + "=" + l.proxy.String(path)
	})
}

func (l *lineBuilder) String() string {
	return l.b.String()
}
