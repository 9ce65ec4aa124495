package schema

import (
	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
	"net/http"
	"time"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	indent          = "    "
)

// Writer helps writing unified API responses
type Writer struct {
	// Clock provides the envelope timestamps; defaults to the real clock
	Clock clockwork.Clock

	// Location is the time zone envelope timestamps are rendered in; defaults to time.Local
	Location *time.Location

	InternalErrorHook func(err error)
}

// Timestamp returns the current time formatted using TimestampLayout
func (writer *Writer) Timestamp() string {
	clock := writer.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	loc := writer.Location
	if loc == nil {
		loc = time.Local
	}
	return clock.Now().In(loc).Format(TimestampLayout)
}

// WriteJSONCode writes the pretty-printed JSON representation of value to the given response writer using the
// given HTTP status code
func (writer *Writer) WriteJSONCode(rw http.ResponseWriter, code int, value any) {
	val, err := json.MarshalIndent(value, "", indent)
	if err != nil {
		writer.internalErrorHook(err)
		rw.Header().Set("Content-Type", contentTypeJSON)
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}
	rw.Header().Set("Content-Type", contentTypeJSON)
	rw.WriteHeader(code)
	rw.Write(val)
}

// WriteJSON writes the JSON representation of value to the given response writer.
// This method sends 200 OK as the HTTP status code; use WriteJSONCode to use a different one.
func (writer *Writer) WriteJSON(rw http.ResponseWriter, value any) {
	writer.WriteJSONCode(rw, http.StatusOK, value)
}

// WriteSuccess wraps data into a success Envelope and writes it using 200 OK
func (writer *Writer) WriteSuccess(rw http.ResponseWriter, message string, data any) {
	writer.WriteJSON(rw, &Envelope{
		Status:    StatusSuccess,
		Message:   message,
		Timestamp: writer.Timestamp(),
		Data:      data,
	})
}

// WriteErrors sends an error response
func (writer *Writer) WriteErrors(rw http.ResponseWriter, code int, errors ...*Error) {
	if errors == nil {
		errors = []*Error{}
	}
	response := &ErrorResponse{
		Status: code,
		Errors: errors,
	}
	for _, err := range response.Errors {
		if err.Details == nil {
			err.Details = map[string]any{}
		}
	}
	writer.WriteJSONCode(rw, code, response)
}

// WriteInternalError processes an internal server error and writes it to the response
func (writer *Writer) WriteInternalError(rw http.ResponseWriter, err error) {
	writer.internalErrorHook(err)
	writer.WriteErrors(rw, http.StatusInternalServerError, ErrInternal)
}

func (writer *Writer) internalErrorHook(err error) {
	if writer.InternalErrorHook != nil {
		writer.InternalErrorHook(err)
	}
}
