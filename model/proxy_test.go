package model

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func mustYAML(t *testing.T, src string) Proxy {
	t.Helper()
	var p Proxy
	if err := yaml.Unmarshal([]byte(src), &p); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	return p
}

func TestProxy_LookupNested(t *testing.T) {
	p := mustYAML(t, `
type: vmess
ws-opts:
  path: /p
  headers:
    Host: h.com
`)
	v, ok := p.Lookup("ws-opts.headers.Host")
	if !ok || v != "h.com" {
		t.Fatalf("Lookup=%v/%v, want h.com/true", v, ok)
	}
	if p.String("ws-opts.path") != "/p" {
		t.Fatalf("path=%q, want=%q", p.String("ws-opts.path"), "/p")
	}
}

func TestProxy_LookupStopsAtFirstMissingSegment(t *testing.T) {
	p := Proxy{
		"type":      "trojan",
		"network":   "ws",
		"ws-opts":   map[string]any{"path": "/p"},
		"http-opts": "not-a-map",
		"sni":       nil,
	}
	for _, path := range []string{
		"ws-opts.headers.Host",
		"grpc-opts.path",
		"http-opts.path",
		"network.x",
		"sni",
	} {
		if p.Has(path) {
			t.Fatalf("Has(%q)=true, want false", path)
		}
		if got := p.String(path); got != "" {
			t.Fatalf("String(%q)=%q, want empty", path, got)
		}
	}
}

func TestProxy_LookupFalseIsPresent(t *testing.T) {
	p := Proxy{"skip-cert-verify": false, "alterId": 0}
	if !p.Has("skip-cert-verify") {
		t.Fatalf("false value should count as present")
	}
	if !p.Has("alterId") {
		t.Fatalf("zero value should count as present")
	}
}

func TestProxy_Truthy(t *testing.T) {
	p := Proxy{
		"t":     true,
		"f":     false,
		"empty": "",
		"s":     "obfs",
		"zero":  0,
		"one":   1.0,
		"obj":   map[string]any{},
	}
	want := map[string]bool{"t": true, "f": false, "empty": false, "s": true, "zero": false, "one": true, "obj": true, "missing": false}
	for path, w := range want {
		if got := p.Truthy(path); got != w {
			t.Fatalf("Truthy(%q)=%v, want=%v", path, got, w)
		}
	}
}

func TestProxy_IsZero(t *testing.T) {
	p := Proxy{"i": 0, "f": float64(0), "n": 5, "s": "0"}
	if !p.IsZero("i") || !p.IsZero("f") {
		t.Fatalf("numeric zero should report true")
	}
	if p.IsZero("n") || p.IsZero("s") || p.IsZero("missing") {
		t.Fatalf("non-zero, string and missing values should report false")
	}
}

func TestProxy_Type(t *testing.T) {
	if got := (Proxy{"type": "ss"}).Type(); got != "ss" {
		t.Fatalf("Type=%q, want=ss", got)
	}
	if got := (Proxy{"type": 1}).Type(); got != "" {
		t.Fatalf("Type=%q, want empty for non-string", got)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{true, "true"},
		{false, "false"},
		{443, "443"},
		{float64(443), "443"},
		{1.5, "1.5"},
		{[]any{"a.com", "b.com"}, "a.com,b.com"},
		{[]string{"a"}, "a"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Fatalf("FormatValue(%#v)=%q, want %q", tt.in, got, tt.want)
		}
	}
}
