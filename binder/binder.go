package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
)

// DefaultMaxBodySize limits request bodies read by Values.
const DefaultMaxBodySize int64 = 1 << 20

// Values reads a flat form submission into field values. It accepts a JSON
// object whose members are strings (numbers and booleans are kept in their
// literal form, null becomes "") and application/x-www-form-urlencoded or
// multipart bodies, where the first value of each key wins.
func Values(r *http.Request) (map[string]string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, ErrMissingContentType
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	switch mediaType {
	case "application/json":
		return jsonValues(r)
	case "application/x-www-form-urlencoded":
		return formValues(r, false)
	case "multipart/form-data":
		return formValues(r, true)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

func jsonValues(r *http.Request) (map[string]string, error) {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, DefaultMaxBodySize))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	values := make(map[string]string, len(raw))
	for name, v := range raw {
		switch val := v.(type) {
		case nil:
			values[name] = ""
		case string:
			values[name] = val
		case json.Number:
			values[name] = val.String()
		case bool:
			values[name] = strconv.FormatBool(val)
		default:
			return nil, fmt.Errorf("%w: field %q must be a string", ErrInvalidJSON, name)
		}
	}
	return values, nil
}

func formValues(r *http.Request, multipart bool) (map[string]string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxBodySize)

	var err error
	if multipart {
		err = r.ParseMultipartForm(DefaultMaxBodySize)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	values := make(map[string]string, len(r.PostForm))
	for name, vals := range r.PostForm {
		if len(vals) > 0 {
			values[name] = vals[0]
		}
	}
	return values, nil
}
