package domain

import "errors"

// ErrRequestFailed is the single failure signal for calls against the grading
// service. It covers transport errors and non-2xx responses alike.
var ErrRequestFailed = errors.New("request failed")
