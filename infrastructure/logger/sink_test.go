package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wiralabs/campaign-api/apperr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedSink() (*Sink, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return NewSink(zap.New(core)), logs
}

func TestSink_EmitLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantLevel zapcore.Level
	}{
		{apperr.LevelError, zapcore.ErrorLevel},
		{apperr.LevelWarning, zapcore.WarnLevel},
		{apperr.LevelInfo, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			// Arrange
			sink, logs := observedSink()

			// Act
			err := sink.Emit(apperr.LogRecord{
				Level:      tt.level,
				StatusCode: 500,
				Message:    "boom",
			})

			// Assert
			require.NoError(t, err)
			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)
		})
	}
}

func TestSink_EmitFields(t *testing.T) {
	// Arrange
	sink, logs := observedSink()

	rec := apperr.LogRecord{
		Level:          apperr.LevelError,
		StatusCode:     500,
		StatusRange:    "5xx",
		StatusCategory: "error",
		Method:         "GET",
		Path:           "/test/table-missing",
		ClientAddr:     "203.0.113.9:51430",
		LatencyMS:      12,
		ErrorID:        "abc-123",
		ErrorType:      "DatabaseOperational",
		Message:        "A required database object is missing",
	}

	// Act
	require.NoError(t, sink.Emit(rec))

	// Assert
	entry := logs.All()[0]
	ctx := entry.ContextMap()
	assert.Equal(t, int64(500), ctx["http.status_code"])
	assert.Equal(t, "5xx", ctx["http.status_range"])
	assert.Equal(t, "error", ctx["status_category"])
	assert.Equal(t, "GET", ctx["method"])
	assert.Equal(t, "/test/table-missing", ctx["path"])
	assert.Equal(t, "203.0.113.9:51430", ctx["remote_addr"])
	assert.Equal(t, int64(12), ctx["latency_ms"])
	assert.Equal(t, "abc-123", ctx["error_id"])
	assert.Equal(t, "DatabaseOperational", ctx["error_type"])
}

func TestSink_EmitUninitialized(t *testing.T) {
	sink := NewSink(nil)

	err := sink.Emit(apperr.LogRecord{Level: apperr.LevelError})

	assert.Error(t, err)
}
