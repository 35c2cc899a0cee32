// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// errorBody covers the error payloads of both the REST and auth endpoints.
type errorBody struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())

	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case resp.StatusCode() == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case resp.StatusCode() == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrUnavailable, resp.StatusCode(), msg)
	default:
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

func errorMessage(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return ""
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return raw
	}
	for _, m := range []string{eb.Message, eb.Msg, eb.ErrorDescription, eb.Error} {
		if m != "" {
			return m
		}
	}
	return raw
}
