package apperr

import (
	"time"

	"github.com/google/uuid"
)

// Envelope is the JSON body returned to callers on any failure. The field
// set is fixed: external verification scripts parse all five fields, and
// StatusCode must always equal the actual HTTP status line.
type Envelope struct {
	ErrorID    string `json:"error_id"`
	ErrorType  string `json:"error_type"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	Timestamp  string `json:"timestamp"`
}

// NewEnvelope builds an envelope for one failure occurrence, generating a
// fresh error_id and a UTC detection timestamp.
func NewEnvelope(kind Kind, message string, status int) Envelope {
	if message == "" {
		message = kind.Message()
	}
	return Envelope{
		ErrorID:    uuid.NewString(),
		ErrorType:  string(kind),
		Message:    message,
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// Log severity levels as they appear in emitted records.
const (
	LevelError   = "ERROR"
	LevelWarning = "WARNING"
	LevelInfo    = "INFO"
)

// LogRecord is the structured entry handed to the log sink for each failure.
// It carries the same error_id as the envelope so a response can be
// correlated with its log line.
type LogRecord struct {
	Level          string
	StatusCode     int
	StatusRange    string
	StatusCategory string
	Method         string
	Path           string
	ClientAddr     string
	LatencyMS      int64
	ErrorID        string
	ErrorType      string
	Message        string
}

// LevelFor derives the log severity from the HTTP status code. The kind is
// deliberately not an input: a 500 is an ERROR no matter which code path
// produced it.
func LevelFor(status int) string {
	switch {
	case status >= 500:
		return LevelError
	case status >= 400:
		return LevelWarning
	default:
		return LevelInfo
	}
}

// StatusRange returns the coarse status bucket, e.g. "5xx".
func StatusRange(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// StatusCategory returns the category tag used by log search filters.
func StatusCategory(status int) string {
	switch {
	case status >= 500:
		return "error"
	case status >= 400:
		return "client_error"
	default:
		return "success"
	}
}
