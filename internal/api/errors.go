package api

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Error is an application-level failure: the backend answered, but with a
// non-2xx status or an undecodable body. Transport failures (DNS, refused
// connections, timeouts) are never wrapped in an Error; they surface as
// plain wrapped errors from the http client.
type Error struct {
	// Status is the HTTP status code of the response.
	Status int
	// Message is the top-level error message, resolved from the body's
	// "message" field, then a string "detail" field, then a generic fallback.
	Message string
	// FieldErrors maps a field name to its validation message, extracted
	// from a structured "detail" array when the backend sends one.
	FieldErrors map[string]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// FieldError returns the validation message for a field, if any.
func (e *Error) FieldError(field string) (string, bool) {
	msg, ok := e.FieldErrors[field]
	return msg, ok
}

// errorBody is the backend's error envelope. "detail" is either a plain
// string or an array of validation problems, so it is decoded lazily.
type errorBody struct {
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
}

// validationProblem mirrors one entry of a structured validation-error
// array: a location path into the request plus a message.
type validationProblem struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// fieldName derives a synthetic form-field name from the problem's
// location path, e.g. ["body", "account_type"] -> "account_type".
func (p validationProblem) fieldName() string {
	if len(p.Loc) == 0 {
		return ""
	}

	switch last := p.Loc[len(p.Loc)-1].(type) {
	case string:
		return last
	case float64:
		return strconv.Itoa(int(last))
	default:
		return fmt.Sprint(last)
	}
}

// newError classifies a non-2xx response body into an *Error.
func newError(status int, body []byte) *Error {
	apiErr := &Error{
		Status:  status,
		Message: fmt.Sprintf("HTTP error, status %d", status),
	}

	var envelope errorBody
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apiErr
	}

	if envelope.Message != "" {
		apiErr.Message = envelope.Message
	}

	if len(envelope.Detail) == 0 {
		return apiErr
	}

	var detailText string
	if err := json.Unmarshal(envelope.Detail, &detailText); err == nil {
		if envelope.Message == "" && detailText != "" {
			apiErr.Message = detailText
		}

		return apiErr
	}

	var problems []validationProblem
	if err := json.Unmarshal(envelope.Detail, &problems); err != nil {
		return apiErr
	}

	for _, p := range problems {
		field := p.fieldName()
		if field == "" {
			continue
		}

		if apiErr.FieldErrors == nil {
			apiErr.FieldErrors = make(map[string]string, len(problems))
		}

		apiErr.FieldErrors[field] = p.Msg
	}

	return apiErr
}
