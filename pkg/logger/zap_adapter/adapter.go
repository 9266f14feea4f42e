package zap_adapter

import (
	"fmt"

	"go.uber.org/zap"
	"shipment-service/pkg/logger"
)

const defaultLevel = "info"

type Options struct {
	Service string
	Level   string // debug, info, warn, error; empty means info
}

type ZapAdapter struct {
	logger *zap.Logger
}

func NewZapAdapter(opts Options) (*ZapAdapter, error) {
	config := zap.NewProductionConfig()

	level := opts.Level
	if level == "" {
		level = defaultLevel
	}
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	config.Level = atomicLevel
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Encoding = "json"

	zapLogger, err := config.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	)
	if err != nil {
		return nil, err
	}

	if opts.Service != "" {
		zapLogger = zapLogger.With(zap.String("service", opts.Service))
	}
	return &ZapAdapter{logger: zapLogger}, nil
}

func (z *ZapAdapter) Debug(msg string, fields ...logger.Field) {
	z.logger.Debug(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Info(msg string, fields ...logger.Field) {
	z.logger.Info(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Warn(msg string, fields ...logger.Field) {
	z.logger.Warn(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Error(msg string, fields ...logger.Field) {
	z.logger.Error(msg, convertFields(fields)...)
}

func (z *ZapAdapter) With(fields ...logger.Field) logger.Logger {
	return &ZapAdapter{
		logger: z.logger.With(convertFields(fields)...),
	}
}

func (z *ZapAdapter) Sync() error {
	return z.logger.Sync()
}

func convertFields(fields []logger.Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		// errors keep their message instead of being reflected as an empty object
		if err, ok := f.Value.(error); ok {
			zapFields = append(zapFields, zap.NamedError(f.Key, err))
			continue
		}
		zapFields = append(zapFields, zap.Any(f.Key, f.Value))
	}
	return zapFields
}
