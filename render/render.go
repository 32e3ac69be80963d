package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/John-Robertt/qxline/model"
)

// ErrUnsupportedProxyType is the Cause of the RenderError returned for a
// proxy whose "type" has no Quantumult X mapping.
var ErrUnsupportedProxyType = errors.New("unsupported proxy type")

type RenderError struct {
	AppError model.AppError
	Cause    error
}

func (e *RenderError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.AppError.Code, e.AppError.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.AppError.Code, e.AppError.Message, e.Cause)
}

func (e *RenderError) Unwrap() error { return e.Cause }

// UnsupportedProxyType returns the offending type tag when err was produced
// by the dispatcher rejecting a proxy.
func UnsupportedProxyType(err error) (string, bool) {
	var re *RenderError
	if !errors.As(err, &re) || !errors.Is(re.Cause, ErrUnsupportedProxyType) {
		return "", false
	}
	return re.AppError.Snippet, true
}

func unsupportedProxyTypeError(typ string) *RenderError {
	return &RenderError{
		AppError: model.AppError{
			Code:    "UNSUPPORTED_PROXY_TYPE",
			Message: fmt.Sprintf("Quantumult X 不支持的节点类型：%s", typ),
			Stage:   "render",
			Snippet: typ,
			Hint:    "supported: ss, ssr, trojan, vmess, http, socks5",
		},
		Cause: ErrUnsupportedProxyType,
	}
}

// Producer turns proxies into Quantumult X server_local lines.
// The zero value is not usable; call NewProducer. A Producer is safe for
// concurrent use.
type Producer struct {
	log logrus.FieldLogger
}

type Option func(*Producer)

// WithLogger sets the logger used for per-proxy debug output and rejected
// types. A nil logger selects logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Producer) {
		p.log = l
	}
}

func NewProducer(opts ...Option) *Producer {
	p := &Producer{}
	for _, o := range opts {
		o(p)
	}
	if p.log == nil {
		p.log = logrus.StandardLogger()
	}
	return p
}

var silent = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

var defaultProducer = NewProducer(WithLogger(silent))

// Produce renders a single proxy with a producer that does not log.
func Produce(proxy model.Proxy) (string, error) {
	return defaultProducer.Produce(proxy)
}

// Produce dispatches on proxy.Type() and returns one line without a trailing
// newline. It fails only for unsupported types, and never returns partial
// output.
func (p *Producer) Produce(proxy model.Proxy) (string, error) {
	typ := proxy.Type()
	fn, ok := quanxProducers[typ]
	if !ok {
		p.log.WithField("type", typ).Warn("proxy type not supported by Quantumult X")
		return "", unsupportedProxyTypeError(typ)
	}

	line := fn(proxy)
	p.log.WithFields(logrus.Fields{
		"type": typ,
		"name": proxy.Name(),
	}).Debug("produced quantumult x line")
	return line, nil
}
