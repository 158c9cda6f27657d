package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New instancia um logger zap de produção com saída JSON estruturada.
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// Must encerra o processo se o logger não puder ser criado.
func Must(l *zap.Logger, err error) *zap.Logger {
	if err != nil {
		panic(err)
	}
	return l
}

// Named devolve um logger filho identificado pelo componente.
func Named(base *zap.Logger, componente string) *zap.Logger {
	if base == nil {
		return zap.NewNop()
	}
	return base.Named(componente)
}
