// Package logging configures the process-wide logrus logger used by the
// priq tools and hands out entries carrying context fields.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type contextKey string

const LogFieldsContextKey = contextKey("log_fields")

// log_fields keys
const (
	// WorkloadFieldKey benchmark workload name (string)
	WorkloadFieldKey = "workload"
	// WorkerFieldKey benchmark worker number (int)
	WorkerFieldKey = "worker"
	// RunIDFieldKey unique id of one harness run (string)
	RunIDFieldKey = "run_id"
)

var defaultLogger = logrus.New()

type Fields = logrus.Fields

func Level() string {
	return defaultLogger.GetLevel().String()
}

func SetLevel(level string) error {
	switch strings.ToLower(level) {
	case "trace":
		defaultLogger.SetLevel(logrus.TraceLevel)
	case "debug":
		defaultLogger.SetLevel(logrus.DebugLevel)
	case "info":
		defaultLogger.SetLevel(logrus.InfoLevel)
	case "warn", "warning":
		defaultLogger.SetLevel(logrus.WarnLevel)
	case "error":
		defaultLogger.SetLevel(logrus.ErrorLevel)
	case "panic":
		defaultLogger.SetLevel(logrus.PanicLevel)
	case "null", "none":
		defaultLogger.SetLevel(logrus.PanicLevel)
		defaultLogger.SetOutput(io.Discard)
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	return nil
}

// SetOutputs directs the log to every output: "-" is stdout, "=" is stderr
// and anything else is a file rotated by size.
func SetOutputs(outputs []string, fileMaxSizeMB, filesKeep int) error {
	var writers []io.Writer
	for _, output := range outputs {
		var w io.Writer
		switch output {
		case "":
			continue
		case "-":
			w = os.Stdout
		case "=":
			w = os.Stderr
		default:
			w = &lumberjack.Logger{
				Filename:   output,
				MaxSize:    fileMaxSizeMB,
				MaxBackups: filesKeep,
			}
		}
		writers = append(writers, w)
	}
	if len(writers) == 1 {
		defaultLogger.SetOutput(writers[0])
	} else if len(writers) > 1 {
		defaultLogger.SetOutput(io.MultiWriter(writers...))
	}
	return nil
}

func SetOutputFormat(format string) error {
	var formatter logrus.Formatter
	switch strings.ToLower(format) {
	case "text":
		formatter = &logrus.TextFormatter{
			FullTimestamp:          true,
			DisableLevelTruncation: true,
			PadLevelText:           true,
			QuoteEmptyFields:       true,
		}
	case "json":
		formatter = &logrus.JSONFormatter{
			PrettyPrint: false,
		}
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	defaultLogger.SetFormatter(formatter)
	return nil
}

func Default() *logrus.Entry {
	return logrus.NewEntry(defaultLogger)
}

func FromContext(ctx context.Context) *logrus.Entry {
	log := Default().WithContext(ctx)
	fields, ok := ctx.Value(LogFieldsContextKey).(Fields)
	if !ok {
		return log
	}
	return log.WithFields(fields)
}

func AddFields(ctx context.Context, fields Fields) context.Context {
	loggerFields := Fields{}
	if ctxFields, ok := ctx.Value(LogFieldsContextKey).(Fields); ok {
		for k, v := range ctxFields {
			loggerFields[k] = v
		}
	}
	for k, v := range fields {
		loggerFields[k] = v
	}
	return context.WithValue(ctx, LogFieldsContextKey, loggerFields)
}
