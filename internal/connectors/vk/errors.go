package vk

import (
	"errors"
	"fmt"
)

// APIError represents a VK API error payload.
type APIError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_msg"`
	Method  string `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vk: API error %d on %s: %s", e.Code, e.Method, e.Message)
}

// VK API error codes of interest.
const (
	codeAuthFailed  = 5
	codeRateLimited = 6
)

// IsAuthFailure checks if the error indicates an invalid or expired token.
func IsAuthFailure(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == codeAuthFailed
	}
	return false
}

// IsRateLimited checks if the error indicates too many requests.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == codeRateLimited
	}
	return false
}
