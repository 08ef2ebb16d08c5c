package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wiralabs/campaign-api/apperr"
	"github.com/wiralabs/campaign-api/constant"
	appLogger "github.com/wiralabs/campaign-api/infrastructure/logger"
)

// RequestID adds a request ID to the context and response headers
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		ctx := appLogger.WithRequestID(r.Context(), requestID)

		w.Header().Set(constant.HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLogger is middleware that records the request start time and logs
// request/response info. The completion log level follows the response
// status code: 5xx logs at error, 4xx at warn, everything else at info.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			ctx := apperr.WithStart(r.Context(), startTime)

			appLogger.CtxInfo(ctx, constant.MsgRequestReceived, appLogger.LoggerInfo{
				ContextFunction: constant.CtxAPI,
				Data: map[string]interface{}{
					constant.DataMethod:     r.Method,
					constant.DataPath:       r.URL.Path,
					constant.DataRemoteAddr: r.RemoteAddr,
					constant.DataUserAgent:  r.UserAgent(),
				},
			})

			// Create a response wrapper to capture status code
			ww := newStatusResponseWriter(w)

			next.ServeHTTP(ww, r.WithContext(ctx))

			latency := time.Since(startTime)

			statusCode := ww.status
			logFunc := appLogger.CtxInfo

			if statusCode >= 500 {
				logFunc = appLogger.CtxError
			} else if statusCode >= 400 {
				logFunc = appLogger.CtxWarn
			}

			logFunc(ctx, constant.MsgRequestCompleted, appLogger.LoggerInfo{
				ContextFunction: constant.CtxAPI,
				Data: map[string]interface{}{
					constant.DataHTTPStatus: statusCode,
					constant.DataLatency:    latency.Milliseconds(),
					constant.DataMethod:     r.Method,
					constant.DataPath:       r.URL.Path,
					constant.DataSize:       ww.size,
				},
			})
		})
	}
}

// statusResponseWriter is a custom response writer that captures the status code and response size
type statusResponseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

// newStatusResponseWriter creates a new statusResponseWriter
func newStatusResponseWriter(w http.ResponseWriter) *statusResponseWriter {
	return &statusResponseWriter{
		ResponseWriter: w,
		status:         http.StatusOK, // Default status code
	}
}

// WriteHeader captures the status code
func (w *statusResponseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Write captures the response size
func (w *statusResponseWriter) Write(b []byte) (int, error) {
	size, err := w.ResponseWriter.Write(b)
	w.size += size
	return size, err
}
