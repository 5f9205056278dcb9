// Package logging holds the process-wide zap logger. The terminal belongs to the
// palette, so log lines go to a file.
package logging

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is safe to use before Initialize; it starts out as a no-op.
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize points Logger at path, appending JSON lines. An empty path keeps the
// no-op logger.
func Initialize(path string, debug bool) error {
	if path == "" {
		Logger = zap.NewNop().Sugar()
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.Wrapf(err, "open log file %s", path)
	}

	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), level)
	Logger = zap.New(core).Sugar().Named("spcp")
	return nil
}

// Sync flushes buffered entries. Errors from syncing are not interesting at exit.
func Sync() {
	_ = Logger.Sync()
}
