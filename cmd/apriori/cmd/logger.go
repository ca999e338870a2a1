package cmd

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig selects the CLI logger. V(1) library records are emitted at
// Level "debug".
type LogConfig struct {
	Level   string `mapstructure:"log-level"`
	Encoder string `mapstructure:"log-encoder"`
}

// newLogger builds a zap logger writing to w and exposes it as logr.
func newLogger(cfg LogConfig, w io.Writer) (logr.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return logr.Discard(), errors.Wrapf(errInvalidConfig, "log-level %q", cfg.Level)
	}

	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.StringDurationEncoder

	var enc zapcore.Encoder
	switch cfg.Encoder {
	case "console":
		enc = zapcore.NewConsoleEncoder(ec)
	case "json":
		enc = zapcore.NewJSONEncoder(ec)
	default:
		return logr.Discard(), errors.Wrapf(errInvalidConfig, "log-encoder %q", cfg.Encoder)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)

	return zapr.NewLogger(zap.New(core)), nil
}
