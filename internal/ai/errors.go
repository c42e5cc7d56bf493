package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingAPIKey is returned before any request when no API key is
	// configured.
	ErrMissingAPIKey = errors.New("no API key configured (set OPENAI_API_KEY)")

	// ErrEmptyResponse is returned when the service answers with no choices.
	ErrEmptyResponse = errors.New("model returned an empty response")
)

// parseAPIError extracts a human-readable message from an API error body.
func parseAPIError(statusCode int, body []byte) string {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &errResp) == nil {
		msg := errResp.Error.Message
		if msg == "" {
			msg = errResp.Message
		}
		if msg != "" {
			return msg
		}
	}

	switch statusCode {
	case 401:
		return "authentication failed (check your API key)"
	case 403:
		return "access denied (your API key may lack the required permissions)"
	case 404:
		return "model or endpoint not found"
	case 429:
		return "rate limited (too many requests, please wait)"
	case 500:
		return "internal server error on the provider side"
	case 502, 503:
		return "provider service temporarily unavailable"
	case 529:
		return "provider is overloaded, please try again later"
	}

	s := string(body)
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return fmt.Sprintf("HTTP %d: %s", statusCode, s)
}

// friendlyTransportError converts common network errors to short messages.
func friendlyTransportError(err error) string {
	msg := err.Error()
	if strings.Contains(msg, "connection refused") {
		return "connection refused (is the service reachable?)"
	}
	if strings.Contains(msg, "no such host") {
		return "host not found (check the base URL)"
	}
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded") {
		return "connection timed out"
	}
	if strings.Contains(msg, "EOF") {
		return "connection closed unexpectedly"
	}
	return msg
}
