package log

import (
	"sort"

	"github.com/Invicton-Labs/go-collections/collections"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})
	Panicf(template string, args ...interface{})

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Fatalw(msg string, keysAndValues ...interface{})
	Panicw(msg string, keysAndValues ...interface{})

	Error(err error)
	Fatal(err error)

	With(args ...interface{}) Logger
	WithOptions(opts ...zap.Option) Logger
	WithError(err error) Logger

	// RegisterWriteHook will register a function hook that will be called
	// for each log write.
	RegisterWriteHook(key string, hook ZapWriteHook) stackerr.Error

	// DeregisterWriteHook will deregister a hook that was registered with
	// RegisterWriteHook.
	DeregisterWriteHook(key string) stackerr.Error

	// Config gets the config values that can be used to re-create this logger
	Config() NewInput

	// Clone returns a copy of the logger
	Clone() Logger
}

type logger struct {
	*zap.SugaredLogger
	config NewInput
}

func (l logger) Clone() Logger {
	return logger{
		SugaredLogger: l.SugaredLogger.With(),
		config:        l.config.Clone(),
	}
}

func (l logger) Config() NewInput {
	return l.config.Clone()
}

func (l logger) RegisterWriteHook(key string, hook ZapWriteHook) stackerr.Error {
	if _, ok := l.config.WriteHooks[key]; ok {
		return stackerr.Errorf("Write hook key `%s` is already registered", key)
	}
	l.config.WriteHooks[key] = hook
	return nil
}

func (l logger) DeregisterWriteHook(key string) stackerr.Error {
	if _, ok := l.config.WriteHooks[key]; !ok {
		return stackerr.Errorf("Write hook key `%s` is not registered", key)
	}
	delete(l.config.WriteHooks, key)
	return nil
}

// errFields converts the fields of an error into key/value pairs that can
// be passed to the structured logging methods. The error is converted to a
// stackerr if it isn't one already so that it always carries a stack trace.
func errFields(err error) []any {
	serr := stackerr.Wrap(err)
	fields := serr.Fields()
	kvp := make([]any, 0, 2*len(fields))
	for k, v := range fields {
		kvp = append(kvp, k, v)
	}
	return kvp
}

// Error will add the error fields as log fields, will add a stack trace if
// one isn't already set in the error, and will then log it at the Error level.
func (l logger) Error(err error) {
	l.SugaredLogger.WithOptions(zap.AddCallerSkip(1)).Errorw(err.Error(), errFields(err)...)
}

// Fatal will add the error fields as log fields, will add a stack trace if
// one isn't already set in the error, and will then log it at the Fatal level.
func (l logger) Fatal(err error) {
	l.SugaredLogger.WithOptions(zap.AddCallerSkip(1)).Fatalw(err.Error(), errFields(err)...)
}

func (l logger) With(args ...interface{}) Logger {
	return logger{l.SugaredLogger.With(args...), l.config.Clone()}
}

func (l logger) WithOptions(opts ...zap.Option) Logger {
	return logger{l.SugaredLogger.WithOptions(opts...), l.config.Clone()}
}

// WithError returns a new logger that includes the error's fields with
// every subsequent log write.
func (l logger) WithError(err error) Logger {
	if err == nil {
		return l
	}
	return l.With(errFields(err)...)
}

type NewInput struct {
	Name          string
	Level         zapcore.Level
	IsDevelopment bool
	WriteHooks    map[string]ZapWriteHook
	InitialFields map[string]any
	SkippedFrames int
}

func (ni *NewInput) Clone() NewInput {
	return NewInput{
		Name:          ni.Name,
		Level:         ni.Level,
		IsDevelopment: ni.IsDevelopment,
		WriteHooks:    collections.CopyMap(ni.WriteHooks),
		InitialFields: collections.CopyMap(ni.InitialFields),
		SkippedFrames: ni.SkippedFrames,
	}
}

func New(input NewInput) Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktraces",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder

	if input.IsDevelopment {
		// If it's development mode, modify some settings
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	sink, closeOut, err := zap.Open("stdout")
	if err != nil {
		panic(err)
	}
	errSink, _, err := zap.Open("stderr")
	if err != nil {
		closeOut()
		panic(err)
	}

	buildOpts := []zap.Option{
		zap.ErrorOutput(errSink),
	}

	if input.IsDevelopment {
		buildOpts = append(buildOpts, zap.Development())
	}

	// Add the caller field
	buildOpts = append(buildOpts, zap.AddCaller())

	// Add the stacktraces
	buildOpts = append(buildOpts, zap.AddStacktrace(zap.WarnLevel))

	if input.WriteHooks == nil {
		input.WriteHooks = map[string]ZapWriteHook{}
	} else {
		input.WriteHooks = collections.CopyMap(input.WriteHooks)
	}
	if input.InitialFields == nil {
		input.InitialFields = map[string]any{}
	}

	// Add any initial field as a build option
	if len(input.InitialFields) > 0 {
		fs := make([]zap.Field, 0, len(input.InitialFields))
		keys := make([]string, 0, len(input.InitialFields))
		for k := range input.InitialFields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if f, ok := input.InitialFields[k].(zap.Field); ok {
				f.Key = k
				fs = append(fs, f)
			} else {
				fs = append(fs, zap.Any(k, input.InitialFields[k]))
			}
		}
		buildOpts = append(buildOpts, zap.Fields(fs...))
	}

	if input.SkippedFrames != 0 {
		buildOpts = append(buildOpts, zap.AddCallerSkip(input.SkippedFrames))
	}

	zapLogger := zap.New(
		&core{
			LevelEnabler:  zap.NewAtomicLevelAt(input.Level),
			name:          input.Name,
			enc:           encoder,
			out:           sink,
			getWriteHooks: func() map[string]ZapWriteHook { return input.WriteHooks },
		},
		buildOpts...,
	)

	return &logger{zapLogger.Sugar(), input}
}
