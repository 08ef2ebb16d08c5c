package apperr

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// LogSink receives one LogRecord per failing request. Implementations must
// not block indefinitely: emission happens on the request path before the
// response is written.
type LogSink interface {
	Emit(rec LogRecord) error
}

// RequestInfo captures the request context included in log records.
type RequestInfo struct {
	Method     string
	Path       string
	ClientAddr string
	Start      time.Time
}

type startKey struct{}

// WithStart records the request arrival time in the context. The logging
// middleware sets this so latency covers the whole request, not just the
// failure handling.
func WithStart(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, startKey{}, t)
}

// RequestInfoFrom extracts RequestInfo from an inbound request, falling back
// to time.Now for the start time when no middleware recorded one.
func RequestInfoFrom(r *http.Request) RequestInfo {
	start, ok := r.Context().Value(startKey{}).(time.Time)
	if !ok {
		start = time.Now()
	}
	return RequestInfo{
		Method:     r.Method,
		Path:       r.URL.Path,
		ClientAddr: r.RemoteAddr,
		Start:      start,
	}
}

// Responder converts classified faults into the response envelope and the
// matching log record. The sink is an explicit dependency so the responder
// stays testable without process-global logging state.
type Responder struct {
	sink    LogSink
	dropped atomic.Uint64
}

// NewResponder creates a responder emitting to the given sink. A nil sink is
// tolerated; every record is then counted as dropped.
func NewResponder(sink LogSink) *Responder {
	return &Responder{sink: sink}
}

// Respond emits the log record for the failure and writes the JSON envelope
// with status as the actual HTTP status line. Logging is best-effort: a sink
// failure increments the dropped counter and never affects the response.
func (rp *Responder) Respond(w http.ResponseWriter, info RequestInfo, kind Kind, status int, message string) Envelope {
	env := NewEnvelope(kind, message, status)

	rec := LogRecord{
		Level:          LevelFor(status),
		StatusCode:     status,
		StatusRange:    StatusRange(status),
		StatusCategory: StatusCategory(status),
		Method:         info.Method,
		Path:           info.Path,
		ClientAddr:     info.ClientAddr,
		LatencyMS:      time.Since(info.Start).Milliseconds(),
		ErrorID:        env.ErrorID,
		ErrorType:      env.ErrorType,
		Message:        env.Message,
	}

	if rp.sink == nil {
		rp.dropped.Add(1)
	} else if err := rp.sink.Emit(rec); err != nil {
		rp.dropped.Add(1)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)

	return env
}

// RespondError classifies err and responds with the kind's default message.
// The raw error text never reaches the caller.
func (rp *Responder) RespondError(w http.ResponseWriter, info RequestInfo, err error) Envelope {
	kind, status := Classify(err)
	return rp.Respond(w, info, kind, status, "")
}

// Dropped reports how many log records could not be delivered to the sink.
func (rp *Responder) Dropped() uint64 {
	return rp.dropped.Load()
}
