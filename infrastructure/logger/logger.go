package logger

import (
	"context"
	"os"

	"github.com/wiralabs/campaign-api/constant"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LoggerInfo contains structured logging information
type LoggerInfo struct {
	ContextFunction string
	Error           *CustomError
	Data            map[string]interface{}
}

// CustomError represents a structured error for logging
type CustomError struct {
	Code    string
	Message string
	Type    string
}

// Initialize sets up the logger
func Initialize(isProduction bool) {
	// Default level
	logLevel := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	if isProduction {
		logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	// Create encoder config
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        constant.LogTimeKey,
		LevelKey:       constant.LogLevelKey,
		NameKey:        constant.LogNameKey,
		CallerKey:      constant.LogCallerKey,
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     constant.LogMessageKey,
		StacktraceKey:  constant.LogStacktraceKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	// Create config
	var config zap.Config
	if isProduction {
		config = zap.Config{
			Level:       logLevel,
			Development: false,
			Sampling: &zap.SamplingConfig{
				Initial:    100,
				Thereafter: 100,
			},
			Encoding:         constant.LogEncodingJSON,
			EncoderConfig:    encoderConfig,
			OutputPaths:      []string{constant.LogOutputStdout},
			ErrorOutputPaths: []string{constant.LogOutputStderr},
		}
	} else {
		config = zap.Config{
			Level:            logLevel,
			Development:      true,
			Encoding:         constant.LogEncodingConsole,
			EncoderConfig:    encoderConfig,
			OutputPaths:      []string{constant.LogOutputStdout},
			ErrorOutputPaths: []string{constant.LogOutputStderr},
		}
	}

	// Build the logger
	var err error
	logger, err = config.Build()
	if err != nil {
		// If we can't initialize the logger, we're in serious trouble
		// Fall back to stderr and exit
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// Close ensures logger syncs before shutdown
func Close() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// L exposes the underlying zap logger for components that take it as an
// explicit dependency, like the responder sink.
func L() *zap.Logger {
	return logger
}

// createFields creates zap fields with proper structure
func createFields(ctx context.Context, info LoggerInfo) []zap.Field {
	fields := []zap.Field{}

	// Add request ID if available
	if requestID := getRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String(constant.LogRequestIDKey, requestID))
	}

	// Add context/function info
	if info.ContextFunction != "" {
		fields = append(fields, zap.String(constant.LogFunctionKey, info.ContextFunction))
	}

	// Add error details if available
	if info.Error != nil {
		fields = append(fields, zap.String(constant.LogErrorCodeKey, info.Error.Code))
		fields = append(fields, zap.String(constant.LogErrorTypeKey, info.Error.Type))
		fields = append(fields, zap.String(constant.LogErrorMessageKey, info.Error.Message))
	}

	// Add additional data
	if info.Data != nil {
		for k, v := range info.Data {
			fields = append(fields, zap.Any(k, v))
		}
	}

	return fields
}

// Debug logs a debug message
func Debug(msg string, info LoggerInfo) {
	if logger == nil {
		return
	}
	logger.Debug(msg, createFields(nil, info)...)
}

// Info logs an info message
func Info(msg string, info LoggerInfo) {
	if logger == nil {
		return
	}
	logger.Info(msg, createFields(nil, info)...)
}

// Warn logs a warning message
func Warn(msg string, info LoggerInfo) {
	if logger == nil {
		return
	}
	logger.Warn(msg, createFields(nil, info)...)
}

// Error logs an error message
func Error(msg string, info LoggerInfo) {
	if logger == nil {
		return
	}
	logger.Error(msg, createFields(nil, info)...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, info LoggerInfo) {
	if logger == nil {
		os.Exit(1)
	}
	logger.Fatal(msg, createFields(nil, info)...)
}

// CtxDebug logs a debug message with context
func CtxDebug(ctx context.Context, msg string, info LoggerInfo) {
	if logger == nil {
		return
	}
	logger.Debug(msg, createFields(ctx, info)...)
}

// CtxInfo logs an info message with context
func CtxInfo(ctx context.Context, msg string, info LoggerInfo) {
	if logger == nil {
		return
	}
	logger.Info(msg, createFields(ctx, info)...)
}

// CtxWarn logs a warning message with context
func CtxWarn(ctx context.Context, msg string, info LoggerInfo) {
	if logger == nil {
		return
	}
	logger.Warn(msg, createFields(ctx, info)...)
}

// CtxError logs an error message with context
func CtxError(ctx context.Context, msg string, info LoggerInfo) {
	if logger == nil {
		return
	}
	logger.Error(msg, createFields(ctx, info)...)
}

// NewRequestContext creates a new context for a request
func NewRequestContext() context.Context {
	return context.Background()
}

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, requestID)
}

// getRequestID gets the request ID from the context
func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if reqID, ok := ctx.Value(constant.RequestIDKey).(string); ok {
		return reqID
	}

	return ""
}
