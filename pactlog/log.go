package pactlog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Options configures the package-level logger via a single
// Init(Options{...}) call rather than threading a logger instance
// through every call site.
type Options struct {
	Output       io.Writer
	Prefix       string
	JSONEnabled  bool
	JSONFormatter logrus.Formatter
}

var std = logrus.New()

func init() {
	std.SetOutput(os.Stderr)
}

// Init (re)configures the package-level logger. It is safe to call
// multiple times, e.g. once per test, to redirect output to a Buffer.
func Init(o Options) {
	out := o.Output
	if out == nil {
		out = os.Stderr
	}
	std.SetOutput(out)

	var formatter logrus.Formatter
	switch {
	case o.JSONEnabled && o.JSONFormatter != nil:
		formatter = o.JSONFormatter
	case o.JSONEnabled:
		formatter = &logrus.JSONFormatter{}
	default:
		formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: false}
	}
	if o.Prefix != "" {
		formatter = &prefixFormatter{prefix: o.Prefix, inner: formatter}
	}
	std.SetFormatter(formatter)
}

// prefixFormatter prepends a fixed prefix to every formatted entry: the
// prefix (e.g. "[TEST_PREFIX]") is followed directly by the inner
// formatter's output for the entry, with no separator added.
type prefixFormatter struct {
	prefix string
	inner  logrus.Formatter
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	b, err := f.inner.Format(e)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(f.prefix)+len(b))
	out = append(out, f.prefix...)
	out = append(out, b...)
	return out, nil
}

// applyColour toggles ANSI colour on the package logger's underlying
// logrus.TextFormatter, reaching through a prefixFormatter wrapper if
// Init added one. It is called before every plan/summary log line so
// matchctx.Config.ColouredOutput governs output without a separate
// Init call per request.
func applyColour(enabled bool) {
	switch f := std.Formatter.(type) {
	case *logrus.TextFormatter:
		f.DisableColors = !enabled
	case *prefixFormatter:
		if tf, ok := f.inner.(*logrus.TextFormatter); ok {
			tf.DisableColors = !enabled
		}
	}
}
