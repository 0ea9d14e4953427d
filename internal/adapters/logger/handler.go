package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/snake/internal/ui/output"
	"go.trai.ch/snake/internal/ui/style"
)

// PrettyHandler is a slog.Handler for terminals. The first line of a record carries
// the level icon, the level colour and the attributes; further lines, such as the
// causes of a rendered error chain, are printed muted below it.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []string
	prefix string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
// A nil opts or opts.Level logs at info and above.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := decorate(r.Level)

	headline, rest, _ := strings.Cut(r.Message, "\n")
	if icon != "" {
		headline = icon + " " + headline
	}

	attrs := h.attrs
	if r.NumAttrs() > 0 {
		attrs = append([]string(nil), h.attrs...)
		r.Attrs(func(a slog.Attr) bool {
			attrs = appendAttr(attrs, h.prefix, a)
			return true
		})
	}
	if len(attrs) > 0 {
		headline += " " + strings.Join(attrs, " ")
	}

	var b strings.Builder
	b.WriteString(h.out.String(headline).Foreground(color).String())
	b.WriteByte('\n')
	if rest != "" {
		muted := termenv.RGBColor(string(style.Muted))
		for _, line := range strings.Split(rest, "\n") {
			b.WriteString(h.out.String(line).Foreground(muted).String())
			b.WriteByte('\n')
		}
	}

	_, err := h.out.WriteString(b.String())
	return err
}

func decorate(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	case level < slog.LevelInfo:
		return "", termenv.RGBColor(string(style.Muted))
	default:
		return "", termenv.RGBColor(string(style.Accent))
	}
}

// WithAttrs returns a new Handler that renders attrs on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]string(nil), h.attrs...)
	for _, a := range attrs {
		clone.attrs = appendAttr(clone.attrs, h.prefix, a)
	}
	return &clone
}

// WithGroup returns a new Handler qualifying later keys with name. Groups nest.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// appendAttr renders a as key=value pairs. Group values are flattened into dotted
// keys, errors are rendered by their chain of messages, and values containing
// spaces or quotes are quoted.
func appendAttr(dst []string, prefix string, a slog.Attr) []string {
	v := a.Value.Resolve()
	if a.Key == "" && v.Kind() != slog.KindGroup {
		return dst
	}

	if v.Kind() == slog.KindGroup {
		inner := prefix
		if a.Key != "" {
			inner += a.Key + "."
		}
		for _, ga := range v.Group() {
			dst = appendAttr(dst, inner, ga)
		}
		return dst
	}

	var text string
	if err, ok := v.Any().(error); ok && v.Kind() == slog.KindAny {
		text = chainText(err)
	} else {
		text = v.String()
	}
	if text == "" || strings.ContainsAny(text, " \t\n\"=") {
		text = strconv.Quote(text)
	}
	return append(dst, prefix+a.Key+"="+text)
}

// chainText joins the messages of the chain of err on one line.
func chainText(err error) string {
	entries := collectErrorEntries(err)
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Message != "" {
			parts = append(parts, e.Message)
		}
	}
	return strings.Join(parts, ": ")
}
