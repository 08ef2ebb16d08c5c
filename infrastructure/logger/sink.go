package logger

import (
	"errors"

	"github.com/wiralabs/campaign-api/apperr"
	"github.com/wiralabs/campaign-api/constant"
	"go.uber.org/zap"
)

// Sink delivers failure log records to zap. It satisfies apperr.LogSink so
// the responder never touches the package-global logger directly.
type Sink struct {
	l *zap.Logger
}

// NewSink creates a sink backed by the given zap logger.
func NewSink(l *zap.Logger) *Sink {
	return &Sink{l: l}
}

// Emit writes one record at the severity the record carries. The record's
// level was derived from the HTTP status code upstream; this method only
// translates it to a zap call.
func (s *Sink) Emit(rec apperr.LogRecord) error {
	if s == nil || s.l == nil {
		return errors.New("log sink not initialized")
	}

	fields := []zap.Field{
		zap.Int("http.status_code", rec.StatusCode),
		zap.String("http.status_range", rec.StatusRange),
		zap.String("status_category", rec.StatusCategory),
		zap.String(constant.DataMethod, rec.Method),
		zap.String(constant.DataPath, rec.Path),
		zap.String(constant.DataRemoteAddr, rec.ClientAddr),
		zap.Int64(constant.DataLatency, rec.LatencyMS),
		zap.String(constant.DataErrorID, rec.ErrorID),
		zap.String(constant.LogErrorTypeKey, rec.ErrorType),
	}

	switch rec.Level {
	case apperr.LevelError:
		s.l.Error(rec.Message, fields...)
	case apperr.LevelWarning:
		s.l.Warn(rec.Message, fields...)
	default:
		s.l.Info(rec.Message, fields...)
	}

	return nil
}
