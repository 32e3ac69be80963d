package render

import (
	"strconv"

	"github.com/John-Robertt/qxline/model"
)

var quanxProducers = map[string]func(model.Proxy) string{
	"ss":     shadowsocks,
	"ssr":    shadowsocksr,
	"trojan": trojan,
	"vmess":  vmess,
	"http":   httpProxy,
	"socks5": socks5,
}

func shadowsocks(p model.Proxy) string {
	l := newLineBuilder(p)
	l.append("shadowsocks=" + hostPort(p))
	l.append(",method=" + p.String("cipher"))
	l.append(",password=" + p.String("password"))

	// obfs
	if p.Truthy("plugin") {
		switch p.String("plugin") {
		case "obfs":
			l.field("obfs", "plugin-opts.mode")
		case "v2ray-plugin":
			if p.String("plugin-opts.mode") == "websocket" {
				l.append(wsObfs(p.Truthy("plugin-opts.tls")))
			}
		}
		l.field("obfs-host", "plugin-opts.host")
		l.field("obfs-uri", "plugin-opts.path")
	}

	tlsOptions(l)
	tail(l)
	return l.String()
}

func shadowsocksr(p model.Proxy) string {
	l := newLineBuilder(p)
	l.append("shadowsocksr=" + hostPort(p))
	l.append(",method=" + p.String("cipher"))
	l.append(",password=" + p.String("password"))

	l.append(",ssr-protocol=" + p.String("protocol"))
	if p.Has("protocol-param") {
		l.field("ssr-protocol-param", "protocol-param")
	} else {
		// Older subscription converters emit the misspelled key.
		l.field("ssr-protocol-param", "proctol-param")
	}

	l.field("obfs", "obfs")
	l.field("obfs-host", "obfs-param")

	tail(l)
	return l.String()
}

func trojan(p model.Proxy) string {
	l := newLineBuilder(p)
	l.append("trojan=" + hostPort(p))
	l.append(",password=" + p.String("password"))

	if p.String("network") == "ws" {
		l.append(wsObfs(p.Truthy("tls")))
		l.field("obfs-uri", "ws-opts.path")
		l.field("obfs-host", "ws-opts.headers.Host")
	}

	l.field("over-tls", "tls")
	tlsOptions(l)
	tail(l)
	return l.String()
}

func vmess(p model.Proxy) string {
	l := newLineBuilder(p)
	l.append("vmess=" + hostPort(p))
	l.append(",method=" + p.String("method"))
	l.append(",password=" + p.String("uuid"))

	switch p.String("network") {
	case "ws":
		l.append(wsObfs(p.Truthy("tls")))
		l.field("obfs-uri", "ws-opts.path")
		l.field("obfs-host", "ws-opts.headers.Host")
	case "http":
		l.append(",obfs=http")
		l.field("obfs-uri", "http-opts.path")
		l.field("obfs-host", "http-opts.headers.Host")
	}

	tlsOptions(l)
	l.appendIfPresent("alterId", func() string {
		return ",aead=" + strconv.FormatBool(p.IsZero("alterId"))
	})
	tail(l)
	return l.String()
}

func httpProxy(p model.Proxy) string {
	return authProxy("http", p)
}

func socks5(p model.Proxy) string {
	return authProxy("socks5", p)
}

// authProxy covers http and socks5, which differ only in the leading keyword.
func authProxy(kind string, p model.Proxy) string {
	l := newLineBuilder(p)
	l.append(kind + "=" + hostPort(p))
	l.field("username", "username")
	l.field("password", "password")

	l.field("over-tls", "tls")
	tlsOptions(l)
	tail(l)
	return l.String()
}

func hostPort(p model.Proxy) string {
	return p.String("server") + ":" + p.String("port")
}

func wsObfs(tls bool) string {
	if tls {
		return ",obfs=wss"
	}
	return ",obfs=ws"
}

// tlsOptions emits tls-verification (the inverse of skip-cert-verify) and tls-host.
func tlsOptions(l *lineBuilder) {
	l.appendIfPresent("skip-cert-verify", func() string {
		return ",tls-verification=" + strconv.FormatBool(!l.proxy.Truthy("skip-cert-verify"))
	})
	l.field("tls-host", "sni")
}

// tail emits fast-open, udp-relay and the mandatory tag.
func tail(l *lineBuilder) {
	l.field("fast-open", "tfo")
	l.field("udp-relay", "udp")
	l.append(",tag=" + l.proxy.Name())
}
