package log

import (
	"sync"

	"github.com/Invicton-Labs/go-collections/collections"
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type defaultLoggerHook func(logger Logger) stackerr.Error

type defaultLoggerHookRegistration struct {
	id string
}

func (dlhr defaultLoggerHookRegistration) Close() {
	defaultLoggerHooksLock.Lock()
	defer defaultLoggerHooksLock.Unlock()
	delete(defaultLoggerHooks, dlhr.id)
}

var defaultLoggerHooks = map[string]defaultLoggerHook{}
var defaultLoggerHooksLock sync.Mutex

// registerDefaultLoggerHook will register a hook function that will be called
// whenever the default logger is updated. This can be used for loggers that
// wrap the default logger in order to update those loggers whenever the
// default logger gets updated.
func registerDefaultLoggerHook(hook defaultLoggerHook) (defaultLoggerHookRegistration, stackerr.Error) {
	registration := defaultLoggerHookRegistration{
		id: uuid.New().String(),
	}
	// Run it immediately using the existing default logger, if one
	// has been initialized
	if defaultLogger != nil {
		if err := hook(defaultLogger); err != nil {
			return defaultLoggerHookRegistration{}, err
		}
	}
	defaultLoggerHooksLock.Lock()
	defer defaultLoggerHooksLock.Unlock()
	defaultLoggerHooks[registration.id] = hook
	return registration, nil
}

// A DynamicDefaultLogger wraps the default logger and re-derives its own
// logger whenever the default logger is replaced with InitDefault.
type DynamicDefaultLogger interface {
	Logger() Logger
	IsDevelopment() bool
	Close()
}

type dynamicDefaultLogger struct {
	lock         sync.Mutex
	registration defaultLoggerHookRegistration
	logger       Logger
}

func (ddl *dynamicDefaultLogger) Logger() Logger {
	ddl.lock.Lock()
	defer ddl.lock.Unlock()
	return ddl.logger
}

func (ddl *dynamicDefaultLogger) Close() {
	ddl.lock.Lock()
	defer ddl.lock.Unlock()
	ddl.registration.Close()
}

func (ddl *dynamicDefaultLogger) IsDevelopment() bool {
	ddl.lock.Lock()
	defer ddl.lock.Unlock()
	return ddl.logger.Config().IsDevelopment
}

func NewDynamicDefaultLogger(loggerConfigFunc func(input NewInput) NewInput) DynamicDefaultLogger {
	ddl := &dynamicDefaultLogger{}
	hook := func(logger Logger) stackerr.Error {
		ddl.lock.Lock()
		defer ddl.lock.Unlock()
		if loggerConfigFunc != nil {
			ddl.logger = New(loggerConfigFunc(logger.Config()))
		} else {
			ddl.logger = New(logger.Config())
		}
		return nil
	}
	ddl.registration, _ = registerDefaultLoggerHook(hook)
	return ddl
}

var defaultLogger Logger
var defaultLoggerLock sync.Mutex

var Debugf func(template string, args ...interface{})
var Infof func(template string, args ...interface{})
var Warnf func(template string, args ...interface{})
var Errorf func(template string, args ...interface{})
var Fatalf func(template string, args ...interface{})
var Panicf func(template string, args ...interface{})

var Debugw func(msg string, keysAndValues ...interface{})
var Infow func(msg string, keysAndValues ...interface{})
var Warnw func(msg string, keysAndValues ...interface{})
var Errorw func(msg string, keysAndValues ...interface{})
var Fatalw func(msg string, keysAndValues ...interface{})
var Panicw func(msg string, keysAndValues ...interface{})

var Error func(err error)
var Fatal func(err error)

var With func(args ...interface{}) Logger
var WithOptions func(opts ...zap.Option) Logger
var WithError func(err error) Logger

// InitDefault will create a new logger with the given settings
// and will set it as the default global logger. This function
// IS NOT thread-safe and cannot be used while other routines
// are using the existing global default logger.
func InitDefault(input NewInput) stackerr.Error {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()

	defaultLogger = New(input)

	Debugf = defaultLogger.Debugf
	Infof = defaultLogger.Infof
	Warnf = defaultLogger.Warnf
	Errorf = defaultLogger.Errorf
	Fatalf = defaultLogger.Fatalf
	Panicf = defaultLogger.Panicf

	Debugw = defaultLogger.Debugw
	Infow = defaultLogger.Infow
	Warnw = defaultLogger.Warnw
	Errorw = defaultLogger.Errorw
	Fatalw = defaultLogger.Fatalw
	Panicw = defaultLogger.Panicw

	Error = defaultLogger.Error
	Fatal = defaultLogger.Fatal

	With = defaultLogger.With
	WithOptions = defaultLogger.WithOptions
	WithError = defaultLogger.WithError

	var err stackerr.Error
	// Run all hooks
	defaultLoggerHooksLock.Lock()
	defer defaultLoggerHooksLock.Unlock()
	for _, hook := range defaultLoggerHooks {
		if err = hook(defaultLogger); err != nil {
			break
		}
	}
	return err
}

// SweetenDefaultLogger will add fields to the default logger.
func SweetenDefaultLogger(fields map[string]any) stackerr.Error {
	input := defaultLogger.Config()
	input.InitialFields = collections.MergeMaps(input.InitialFields, fields)
	return InitDefault(input)
}

// UnsweetenDefaultLogger will remove fields from the default logger.
func UnsweetenDefaultLogger(fieldKeys []string) stackerr.Error {
	input := defaultLogger.Config()
	needsUpdate := false
	for _, key := range fieldKeys {
		if _, ok := input.InitialFields[key]; ok {
			needsUpdate = true
			delete(input.InitialFields, key)
		}
	}
	if needsUpdate {
		return InitDefault(input)
	}
	return nil
}

func RegisterDefaultWriteHook(key string, hook ZapWriteHook) stackerr.Error {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()
	return defaultLogger.RegisterWriteHook(key, hook)
}

func DeregisterDefaultWriteHook(key string) stackerr.Error {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()
	return defaultLogger.DeregisterWriteHook(key)
}
