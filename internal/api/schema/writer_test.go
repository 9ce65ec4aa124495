package schema

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
	"github.com/skybi/tinsig/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jakarta = time.FixedZone("WIB", 7*60*60)

func newWriter() *Writer {
	return &Writer{
		Clock:    clockwork.NewFakeClockAt(time.Date(2025, time.January, 20, 3, 4, 5, 0, time.UTC)),
		Location: jakarta,
	}
}

func TestWriter_Timestamp(t *testing.T) {
	assert.Equal(t, "2025-01-20 10:04:05", newWriter().Timestamp())
}

func TestWriter_WriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	page := dataset.Paginate([]string{"a", "b", "c"}, 1, 2)

	newWriter().WriteSuccess(rec, "Done", BuildPaginatedResponse(page))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{
    "status": "success",
    "message": "Done",
    "timestamp": "2025-01-20 10:04:05",
    "data": {
        "data": [
            "a",
            "b"
        ],
        "pagination": {
            "current_page": 1,
            "per_page": 2,
            "total_records": 3,
            "total_pages": 2
        }
    }
}`, rec.Body.String())
}

func TestBuildPaginatedResponse_EmptyDataIsArray(t *testing.T) {
	response := BuildPaginatedResponse(&dataset.Page[int]{CurrentPage: 9, PerPage: 10})

	raw, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"pagination":{"current_page":9,"per_page":10,"total_records":0,"total_pages":0}}`, string(raw))
}

func TestWriter_WriteErrors(t *testing.T) {
	rec := httptest.NewRecorder()

	newWriter().WriteErrors(rec, http.StatusNotFound, ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":404,"errors":[{"type":"generic.notFound","message":"Resource not found.","details":{}}]}`, rec.Body.String())
}

func TestWriter_WriteInternalError(t *testing.T) {
	var hooked error
	writer := newWriter()
	writer.InternalErrorHook = func(err error) {
		hooked = err
	}
	rec := httptest.NewRecorder()

	writer.WriteInternalError(rec, errors.New("boom"))

	assert.EqualError(t, hooked, "boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "generic.internal")
}

func TestWriter_UnencodableValue(t *testing.T) {
	writer := newWriter()
	hooked := false
	writer.InternalErrorHook = func(error) {
		hooked = true
	}
	rec := httptest.NewRecorder()

	writer.WriteJSON(rec, map[string]any{"channel": make(chan int)})

	assert.True(t, hooked)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriter_DefaultsToRealClock(t *testing.T) {
	stamp := (&Writer{}).Timestamp()

	_, err := time.ParseInLocation(TimestampLayout, stamp, time.Local)
	assert.NoError(t, err)
}
