package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/tripboard/internal/constants"
)

// Logger is nil until Init; the helpers below drop messages until then.
var Logger *log.Logger

type Options struct {
	Debug bool
	// Dir is the config directory; logs go to Dir/logs.
	Dir string
}

// Init points the package logger at Dir/logs/tripboard.log. Stderr is
// only added in debug mode since the TUI owns the terminal.
func Init(opts Options) error {
	dir := filepath.Join(opts.Dir, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var w io.Writer = &lumberjack.Logger{
		Filename:   filepath.Join(dir, constants.AppName+".log"),
		MaxSize:    5,
		MaxBackups: 2,
		MaxAge:     14,
	}
	level := log.InfoLevel
	if opts.Debug {
		level = log.DebugLevel
		w = io.MultiWriter(os.Stderr, w)
	}

	Logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          constants.AppName,
		ReportTimestamp: true,
		ReportCaller:    opts.Debug,
	})
	return nil
}

func Debug(msg string, keyvals ...any) { logAt(log.DebugLevel, msg, keyvals) }
func Info(msg string, keyvals ...any)  { logAt(log.InfoLevel, msg, keyvals) }
func Warn(msg string, keyvals ...any)  { logAt(log.WarnLevel, msg, keyvals) }
func Error(msg string, keyvals ...any) { logAt(log.ErrorLevel, msg, keyvals) }

func logAt(level log.Level, msg string, keyvals []any) {
	if Logger == nil {
		return
	}
	Logger.Helper()
	Logger.Log(level, msg, keyvals...)
}
