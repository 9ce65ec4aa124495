package validation

import (
	"errors"
	"github.com/skybi/tinsig/internal/dataset"
	"mime"
	"net/http"
	"net/url"
	"time"
)

const (
	ParamPage     = "page"
	ParamLimit    = "limit"
	ParamDateFrom = "date_from"
	ParamDateTo   = "date_to"
)

// ErrInvalidLimit is reported whenever a client requested a limit <= 0 and the default limit was used instead
var ErrInvalidLimit = errors.New("the requested limit is not a positive number")

// maxFormMemory bounds the multipart form values kept in memory; file parts beyond it spill to disk
const maxFormMemory = 1 << 20

// Params holds the merged query string and form body parameters of a request
type Params map[string]string

// ParseValues merges the query string and form body parameters of a request, keeping every value of a key.
// Both URL-encoded and multipart bodies are supported; a key present in the body replaces the query string values.
// A malformed body is ignored and reported through the returned error, which never invalidates the values.
func ParseValues(request *http.Request) (url.Values, error) {
	values := make(url.Values)
	for key, vals := range request.URL.Query() {
		values[key] = vals
	}

	var err error
	if isMultipart(request) {
		err = request.ParseMultipartForm(maxFormMemory)
	} else {
		err = request.ParseForm()
	}
	for key, vals := range request.PostForm {
		values[key] = vals
	}
	if request.MultipartForm != nil {
		for key, vals := range request.MultipartForm.Value {
			values[key] = vals
		}
	}
	return values, err
}

// ParseParams merges the query string and form body parameters of a request like ParseValues does.
// A key given multiple times resolves to its last value.
func ParseParams(request *http.Request) (Params, error) {
	values, err := ParseValues(request)
	params := make(Params, len(values))
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		params[key] = vals[len(vals)-1]
	}
	return params, err
}

func isMultipart(request *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(request.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// Lookup returns the raw value of a parameter and a boolean indicating whether it was present at all
func (params Params) Lookup(key string) (string, bool) {
	val, ok := params[key]
	return val, ok
}

// Page returns the requested page number.
// An absent page defaults to 1; a present one is coerced using LooseInt, so non-numeric input yields 0.
func (params Params) Page() int {
	raw, ok := params[ParamPage]
	if !ok {
		return 1
	}
	return LooseInt(raw)
}

// Limit returns the requested page size.
// An absent limit defaults to dataset.DefaultLimit; a present one is coerced using LooseInt and capped at
// dataset.MaxLimit. If the result is not positive, dataset.DefaultLimit is returned together with ErrInvalidLimit.
func (params Params) Limit() (int, error) {
	raw, ok := params[ParamLimit]
	if !ok {
		return dataset.DefaultLimit, nil
	}
	limit := min(LooseInt(raw), dataset.MaxLimit)
	if limit <= 0 {
		return dataset.DefaultLimit, ErrInvalidLimit
	}
	return limit, nil
}

// Date parses a YYYY-MM-DD parameter. Absent or unparsable values yield nil.
func (params Params) Date(key string) *time.Time {
	raw, ok := params[key]
	if !ok {
		return nil
	}
	date, err := time.Parse(dataset.DateLayout, raw)
	if err != nil {
		return nil
	}
	return &date
}

// Filter builds the dataset filter for the given definition out of the parameters.
// Every filter field present in the parameters becomes a substring predicate, even if its value is empty.
func (params Params) Filter(def *dataset.Definition) *dataset.Filter {
	filter := &dataset.Filter{}
	for _, field := range def.FilterFields {
		if value, ok := params[field]; ok {
			filter.Where(field, value)
		}
	}
	if def.DateField != "" {
		filter.DateField = def.DateField
		filter.DateFrom = params.Date(ParamDateFrom)
		filter.DateTo = params.Date(ParamDateTo)
	}
	return filter
}
