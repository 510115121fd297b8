package logger

import (
	"fmt"

	"github.com/GlebRadaev/rebox/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	timeLayout  = "15:04:05 02-01-2006"
	serviceName = "rebox"
)

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// InitLogger installs the zap global for the configured level and format.
// An empty format means console.
func InitLogger(conf *config.Config) error {
	lvl, ok := logLvlMap[conf.LogLvl]
	if !ok {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}
	encoding, encoder, err := encoderFor(conf.LogFormat)
	if err != nil {
		return err
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         encoding,
		EncoderConfig:    encoder,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger.Named(serviceName))
	return nil
}

func encoderFor(format string) (string, zapcore.EncoderConfig, error) {
	switch format {
	case "", "console":
		enc := zap.NewDevelopmentEncoderConfig()
		enc.TimeKey = "ts"
		enc.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc.EncodeDuration = zapcore.MillisDurationEncoder
		return "console", enc, nil
	case "json":
		enc := zap.NewProductionEncoderConfig()
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		enc.EncodeDuration = zapcore.MillisDurationEncoder
		return "json", enc, nil
	default:
		return "", zapcore.EncoderConfig{}, fmt.Errorf("unsupported log format: %s", format)
	}
}
