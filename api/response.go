package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeYAML = "application/yaml"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error" jsonschema:"human-readable message naming the offending field"`
	Details string `json:"details,omitempty" jsonschema:"underlying cause of an internal error"`
}

// Error is a failure with a known HTTP status and client-facing message.
type Error struct {
	Err     error
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func badRequest(err error, format string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...), Err: err}
}

// reply is a successful response body.
type reply struct {
	header      http.Header
	contentType string
	body        []byte
}

func textReply(s string) reply {
	return reply{contentType: contentTypeText, body: []byte(s)}
}

func jsonReply(b []byte) reply {
	return reply{contentType: contentTypeJSON, body: b}
}

func (rep reply) write(w http.ResponseWriter) {
	for k, vs := range rep.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}

	w.Header().Set("Content-Type", rep.contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(rep.body)
}

// writeJSON encodes v with two-space indentation.
func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v, json.Deterministic(true), jsontext.WithIndent("  "))
	if err != nil {
		writeError(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal server error occurred while encoding the response.",
			Details: err.Error(),
		})

		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

// writeError writes a compact error envelope.
func writeError(w http.ResponseWriter, status int, body ErrorResponse) {
	b, err := json.Marshal(body)
	if err != nil {
		b = []byte(`{"error":"Internal server error occurred while processing the request."}`)
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

// statusOf returns the status and message err should be answered with.
// Errors without a known status are internal.
func statusOf(err error) (int, string, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr.Message, true
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge,
			fmt.Sprintf("Request body exceeds the limit of %d bytes.", maxErr.Limit), true
	}

	return http.StatusInternalServerError, "", false
}
