// Package logger configures log/slog for programs embedding the validators
// and hands out loggers enriched with values carried by a context.
//
// ConfigureLogging (or ConfigureLoggingWithOptions) installs the process-wide
// default handler and points the standard log package at it. Get then
// returns a logger for a context: it carries the subsystem (the configured
// app name unless WithSubsystem overrides it), every value added with With,
// and discards everything when the context was marked WithMuted.
//
// Errors wrapped by AnnotateError carry key/value pairs that the installed
// handler expands into attributes of any record logging that error.
package logger

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"

	"go.uber.org/atomic"
)

// Default subsystem name, set by ConfigureLoggingWithOptions.
var subsystem atomic.String //nolint:gochecknoglobals

// configMutex serializes changes to the process-wide default loggers.
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

const (
	muteKey      contextKey = "mute"
	subsystemKey contextKey = "subsystem"
	valuesKey    contextKey = "loggerValues"
)

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions installs a text or JSON handler as the slog
// default and redirects the standard log package into it, at
// opts.LegacyLevel. A nil Output means stdout. It returns the new default
// logger.
//
// It is safe to call concurrently, but every call replaces global state.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	handler = &annotatedErrorHandler{inner: handler}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Third-party packages may still use the log package.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// Option adjusts the Options assembled by ConfigureLogging.
type Option func(*Options)

// WithOutput overrides the configured output.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// WithMinLevel overrides the configured minimum level.
func WithMinLevel(level slog.Level) Option {
	return func(o *Options) {
		o.MinLevel = level
	}
}

// ErrInvalidLogOutput is returned when LOG_OUTPUT names an unknown destination.
var ErrInvalidLogOutput = errors.New("invalid log output")

// OptionsFromEnv reads Config from the process environment (LOG_JSON,
// LOG_LEVEL, LEGACY_LOG_LEVEL, LOG_OUTPUT) and turns it into Options for
// app. The given Options are applied afterwards, so WithOutput and
// WithMinLevel win over the environment. Nil options are skipped.
func OptionsFromEnv(app string, opts ...Option) (Options, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return Options{}, err
	}

	options, err := cfg.Options(app)
	if err != nil {
		return Options{}, err
	}

	for _, o := range opts {
		if o != nil {
			o(&options)
		}
	}

	return options, nil
}

// ConfigureLogging configures logging for app from the environment, see
// OptionsFromEnv. Nothing is changed when the environment is invalid.
//
// Typical use is once at startup:
//
//	if _, err := logger.ConfigureLogging("billing"); err != nil {
//		log.Fatal(err)
//	}
func ConfigureLogging(app string, opts ...Option) (*slog.Logger, error) {
	options, err := OptionsFromEnv(app, opts...)
	if err != nil {
		return nil, err
	}

	return ConfigureLoggingWithOptions(options), nil
}

// WithMuted returns a context whose loggers discard everything when muted
// is true.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, muteKey, muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := ctx.Value(muteKey).(bool)

	return ok && muted
}

// WithSubsystem overrides the default subsystem for loggers obtained from
// the returned context.
func WithSubsystem(ctx context.Context, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, subsystemKey, name)
}

// GetSubsystem returns the subsystem set on ctx, or the default one.
func GetSubsystem(ctx context.Context) string { //nolint:contextcheck
	if ctx == nil {
		ctx = context.Background()
	}

	if sub, ok := ctx.Value(subsystemKey).(string); ok {
		return sub
	}

	return subsystem.Load()
}

// With returns a context carrying extra key-value pairs that every logger
// obtained from it will include.
func With(ctx context.Context, values ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(values) == 0 {
		return ctx
	}

	existing := getValues(ctx)
	vals := make([]any, 0, len(existing)+len(values))
	vals = append(vals, existing...)
	vals = append(vals, values...)

	return context.WithValue(ctx, valuesKey, vals)
}

func getValues(ctx context.Context) []any {
	vals, _ := ctx.Value(valuesKey).([]any)

	return vals
}

func firstContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return context.Background()
}

// nullHandler discards every record.
type nullHandler struct{}

func (n *nullHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (n *nullHandler) Handle(context.Context, slog.Record) error { return nil }
func (n *nullHandler) WithAttrs([]slog.Attr) slog.Handler        { return n }
func (n *nullHandler) WithGroup(string) slog.Handler             { return n }

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns the default logger with the subsystem and any values added
// with With. Only the first non-nil context is used.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := firstContext(ctx...)

	if isMuted(realCtx) {
		return nullLogger
	}

	logger := slog.Default().With("subsystem", GetSubsystem(realCtx))

	if vals := getValues(realCtx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}
