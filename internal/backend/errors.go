package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnauthorized marks responses where the backend rejected the credential.
// Callers match it with errors.Is and send the user back to the login form.
var ErrUnauthorized = errors.New("authentication rejected by backend")

// APIError is a non-2xx response with whatever message body the backend
// attached.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}

// RequestError is a transport-level failure: the request never produced a
// backend response.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(data) == 0 {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		switch {
		case body.Message != "":
			apiErr.Message = body.Message
			return apiErr
		case body.Error != "":
			apiErr.Message = body.Error
			return apiErr
		}
	}
	apiErr.Message = string(data)
	return apiErr
}
