package main

import (
	"go.uber.org/zap"

	"github.com/arloliu/cqlstream/internal/logging"
	"github.com/arloliu/cqlstream/types"
)

// zapLogger adapts a zap sugared logger to the types.Logger interface.
type zapLogger struct {
	s *zap.SugaredLogger
}

var _ types.Logger = (*zapLogger)(nil)

func (l *zapLogger) Debug(msg string, keysAndValues ...any) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l *zapLogger) Info(msg string, keysAndValues ...any) {
	l.s.Infow(msg, keysAndValues...)
}

func (l *zapLogger) Warn(msg string, keysAndValues ...any) {
	l.s.Warnw(msg, keysAndValues...)
}

func (l *zapLogger) Error(msg string, keysAndValues ...any) {
	l.s.Errorw(msg, keysAndValues...)
}

// newLogger builds the CLI logger. Verbose mode gets a zap development
// logger on stderr; otherwise logging is off so stdout stays clean for the
// rendered records.
func newLogger(verbose bool) (types.Logger, func(), error) {
	if !verbose {
		return logging.NewNopLogger(), func() {}, nil
	}

	z, err := zap.NewDevelopment()
	if err != nil {
		return nil, nil, err
	}

	flush := func() {
		_ = z.Sync()
	}

	return &zapLogger{s: z.Sugar()}, flush, nil
}
