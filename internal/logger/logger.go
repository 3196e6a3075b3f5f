package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Timestamp layouts
const (
	LstdLayout         = "2006/01/02 15:04:05"
	LmicrosecondLayout = "2006/01/02 15:04:05.000000"
)

// Logger keeps a Printf-style surface over a sugared zap logger.
type Logger struct {
	*zap.SugaredLogger
}

// New creates a new logger writing to stdout
func New() *Logger {
	return newLogger(os.Stdout, LstdLayout)
}

// NewWriter creates a new logger that writes to the provided writer with
// microsecond timestamps
func NewWriter(w io.Writer) *Logger {
	return newLogger(w, LmicrosecondLayout)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func newLogger(w io.Writer, layout string) *Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(layout)

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zapcore.DebugLevel,
	)
	return &Logger{SugaredLogger: zap.New(core).Sugar()}
}

// Printf logs a formatted message at info level
func (l *Logger) Printf(format string, args ...interface{}) {
	l.Infof(strings.TrimSuffix(format, "\n"), args...)
}

// Println logs its arguments at info level
func (l *Logger) Println(args ...interface{}) {
	l.Info(args...)
}
