package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

// JSONResponse is the envelope of every API response.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details holds per-field messages.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// WithMeta merges meta into the envelope's meta object.
func WithMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		if r.body.Meta == nil {
			r.body.Meta = make(map[string]any, len(meta))
		}
		for k, v := range meta {
			r.body.Meta[k] = v
		}
	}
}

// WithDetails attaches per-field messages to the error of the envelope.
func WithDetails(details map[string][]string) JSONOption {
	return func(r *jsonResponse) {
		if r.body.Error == nil {
			r.body.Error = &ErrorDetail{}
		}
		r.body.Error.Details = details
	}
}

// JSON wraps data in the envelope with status 200 unless overridden.
func JSON(data any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: data}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err in the envelope. An HTTPError anywhere in the chain
// supplies status and code; other errors become 500 internal_error without
// leaking their text. message replaces the default text when non-empty.
func JSONError(err error, message string, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusInternalServerError,
		body: JSONResponse{Error: &ErrorDetail{
			Code:    "internal_error",
			Message: http.StatusText(http.StatusInternalServerError),
		}},
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		r.status = httpErr.Code
		r.body.Error.Code = httpErr.Key
		r.body.Error.Message = http.StatusText(httpErr.Code)
	}
	if message != "" {
		r.body.Error.Message = message
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes resp and falls back to a bare 500 when rendering fails
// before anything was written.
func Render(w http.ResponseWriter, r *http.Request, resp Response) {
	if resp == nil {
		http.Error(w, ErrNilResponse.Error(), http.StatusInternalServerError)
		return
	}
	if err := resp.Render(w, r); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
