package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogging installs a charmbracelet/log handler as the slog default.
// Warnings and errors go to stderr; --verbose lowers the level to debug.
// With --log-file, records are also written to a size-rotated file. The
// returned closer releases that file and is nil when no file is used.
func setupLogging(opts *RootOptions, stderr io.Writer) io.Closer {
	level := log.WarnLevel
	if opts.Verbose {
		level = log.DebugLevel
	}

	writer := stderr
	var closer io.Closer
	if opts.LogFile != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		writer = io.MultiWriter(stderr, fileWriter)
		closer = fileWriter
	}

	logger := log.NewWithOptions(writer, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "dayquery",
	})
	slog.SetDefault(slog.New(logger))

	return closer
}
