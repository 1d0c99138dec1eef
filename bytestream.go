// Package bytestream implements a growable binary buffer with independent
// read and write cursors.
//
// Values are appended at the write cursor and consumed from the read cursor.
// Supported shapes are fixed width integers and floats in both byte orders,
// LEB128 varints with optional zigzag mapping, null terminated and raw
// strings in a selectable text encoding, raw byte ranges and 16 byte UUIDs.
//
// The storage grows on demand, doubling until it would cross the configured
// guard limit (2MiB by default), past which writes fail with
// ErrBufferLimitExceeded and leave the stream untouched. Reads never run
// past the end of the readable data, they fail with ErrOutOfBounds instead.
//
// A ByteStream is meant to be owned by a single goroutine.
//
// Some examples on using the API are implemented as executable go programs in the
// `examples` subdirectory.
package bytestream

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is the last tagged version of the package
const Version = "1.0.0"

var logging bool
var logWriters = []zapcore.WriteSyncer{os.Stdout}
var logger *zap.Logger
var zapEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
}

func initLogging() {
	logging = false
	initializeLogger()
}

// EnableLogging enables logging if true is passed
// and disables it if false is passed.
func EnableLogging(enable bool) {
	logging = enable
}

// AddLogWriter adds a new io.Writer as a target for writing
// logs.
func AddLogWriter(writer io.Writer) {
	logWriters = append(logWriters, zapcore.AddSync(writer))
	initializeLogger()
}

// SetLogWriters will set the passed io.Writer instances as targets for
// writing logs.
func SetLogWriters(writers ...io.Writer) {
	writesyncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		writesyncers = append(writesyncers, zapcore.AddSync(w))
	}

	logWriters = writesyncers
	initializeLogger()
}

func initializeLogger() {
	ws := zap.CombineWriteSyncers(logWriters...)
	logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapEncoderConfig),
		ws, zapcore.InfoLevel,
	))
}

// init maintains a central location of all things that happen when the package is initialized
// instead of everything being scattered in multiple source files
func init() {
	initLogging()

	err := initConfig()
	if err != nil && logging {
		logger.Error("error reading the config file, falling back to defaults",
			zap.String("module", "config"),
			zap.Error(err),
		)
	}
}
