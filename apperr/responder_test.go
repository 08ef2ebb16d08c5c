package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSink records emitted log records and can be made to fail.
type captureSink struct {
	records []LogRecord
	err     error
}

func (s *captureSink) Emit(rec LogRecord) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, rec)
	return nil
}

func testInfo() RequestInfo {
	return RequestInfo{
		Method:     "GET",
		Path:       "/campaigns/1",
		ClientAddr: "203.0.113.9:51430",
		Start:      time.Now(),
	}
}

func TestRespond_EnvelopeMatchesResponseStatus(t *testing.T) {
	// Arrange
	sink := &captureSink{}
	rp := NewResponder(sink)
	w := httptest.NewRecorder()

	// Act
	env := rp.Respond(w, testInfo(), KindNotFound, 404, "")

	// Assert
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, 404, env.StatusCode)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, w.Code, body.StatusCode)
	assert.Equal(t, env.ErrorID, body.ErrorID)
}

func TestRespond_AllEnvelopeFieldsPresent(t *testing.T) {
	// Arrange
	rp := NewResponder(&captureSink{})
	w := httptest.NewRecorder()

	// Act
	rp.Respond(w, testInfo(), KindInternal, 500, "")

	// Assert
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, field := range []string{"error_id", "error_type", "message", "status_code", "timestamp"} {
		assert.Contains(t, body, field)
		assert.NotNil(t, body[field])
		assert.NotEqual(t, "", body[field])
	}
}

func TestRespond_LogRecordCorrelatesWithEnvelope(t *testing.T) {
	// Arrange
	sink := &captureSink{}
	rp := NewResponder(sink)
	w := httptest.NewRecorder()

	// Act
	env := rp.Respond(w, testInfo(), KindDatabaseOperational, 500, "")

	// Assert
	require.Len(t, sink.records, 1)
	rec := sink.records[0]
	assert.Equal(t, env.ErrorID, rec.ErrorID)
	assert.Equal(t, LevelError, rec.Level)
	assert.Equal(t, 500, rec.StatusCode)
	assert.Equal(t, "5xx", rec.StatusRange)
	assert.Equal(t, "error", rec.StatusCategory)
	assert.Equal(t, "GET", rec.Method)
	assert.Equal(t, "/campaigns/1", rec.Path)
	assert.Equal(t, "203.0.113.9:51430", rec.ClientAddr)
	assert.GreaterOrEqual(t, rec.LatencyMS, int64(0))
}

func TestRespond_SeverityFollowsStatusNotKind(t *testing.T) {
	// A 4xx status logs at WARNING even for a kind that usually maps to 5xx,
	// and vice versa: severity is a function of the wire status only.
	tests := []struct {
		status    int
		wantLevel string
	}{
		{500, LevelError},
		{503, LevelError},
		{400, LevelWarning},
		{404, LevelWarning},
		{422, LevelWarning},
		{200, LevelInfo},
	}

	for _, tt := range tests {
		sink := &captureSink{}
		rp := NewResponder(sink)
		w := httptest.NewRecorder()

		rp.Respond(w, testInfo(), KindInternal, tt.status, "")

		assert.Equal(t, tt.wantLevel, sink.records[0].Level, "status %d", tt.status)
	}
}

func TestRespond_SinkFailureDoesNotAffectResponse(t *testing.T) {
	// Arrange
	sink := &captureSink{err: errors.New("aggregation backend down")}
	rp := NewResponder(sink)
	w := httptest.NewRecorder()

	// Act
	env := rp.Respond(w, testInfo(), KindInternal, 500, "")

	// Assert
	assert.Equal(t, 500, w.Code)
	assert.NotEmpty(t, env.ErrorID)
	assert.Equal(t, uint64(1), rp.Dropped())
}

func TestRespond_NilSinkCountsDropped(t *testing.T) {
	rp := NewResponder(nil)
	w := httptest.NewRecorder()

	rp.Respond(w, testInfo(), KindValidation, 400, "")

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, uint64(1), rp.Dropped())
}

func TestRespondError_Classifies(t *testing.T) {
	// Arrange
	sink := &captureSink{}
	rp := NewResponder(sink)
	w := httptest.NewRecorder()

	// Act
	env := rp.RespondError(w, testInfo(), fmt.Errorf("lookup: %w", ErrNotFound))

	// Assert
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "NotFound", env.ErrorType)
	assert.Equal(t, LevelWarning, sink.records[0].Level)
}

func TestRespondError_MessageNeverLeaksInternals(t *testing.T) {
	// Arrange
	rp := NewResponder(&captureSink{})
	w := httptest.NewRecorder()

	// Act
	env := rp.RespondError(w, testInfo(), fmt.Errorf("%w: password=hunter2", ErrInternal))

	// Assert
	assert.Equal(t, KindInternal.Message(), env.Message)
	assert.NotContains(t, w.Body.String(), "hunter2")
}

func TestNewEnvelope_UniqueIDs(t *testing.T) {
	// Arrange
	seen := make(map[string]struct{}, 10000)

	// Act
	for i := 0; i < 10000; i++ {
		env := NewEnvelope(KindInternal, "", 500)
		seen[env.ErrorID] = struct{}{}
	}

	// Assert
	assert.Len(t, seen, 10000)
}

func TestNewEnvelope_TimestampIsUTC(t *testing.T) {
	env := NewEnvelope(KindNotFound, "", 404)

	ts, err := time.Parse(time.RFC3339Nano, env.Timestamp)
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, LevelError, LevelFor(500))
	assert.Equal(t, LevelError, LevelFor(599))
	assert.Equal(t, LevelWarning, LevelFor(400))
	assert.Equal(t, LevelWarning, LevelFor(499))
	assert.Equal(t, LevelInfo, LevelFor(200))
	assert.Equal(t, LevelInfo, LevelFor(302))
}

func TestStatusRangeAndCategory(t *testing.T) {
	assert.Equal(t, "5xx", StatusRange(500))
	assert.Equal(t, "4xx", StatusRange(404))
	assert.Equal(t, "2xx", StatusRange(201))
	assert.Equal(t, "error", StatusCategory(500))
	assert.Equal(t, "client_error", StatusCategory(404))
	assert.Equal(t, "success", StatusCategory(200))
}
