// Package apierr defines the error taxonomy for calls against the mxradar
// backend. Every failed exchange is classified exactly once into one of four
// kinds; callers branch on the kind and show Message to the user as-is.
package apierr

import (
	"fmt"
	"math"
	"time"
)

// Kind tags an API error with its failure domain.
type Kind string

const (
	// KindNetwork means the exchange failed before any HTTP response was
	// received: DNS failure, connection refused, timeout.
	KindNetwork Kind = "network"

	// KindAuth means the backend rejected the session credential (HTTP 401).
	KindAuth Kind = "auth"

	// KindRateLimit means a request quota was exhausted (HTTP 429).
	KindRateLimit Kind = "rate_limit"

	// KindServer covers every other 4xx/5xx response.
	KindServer Kind = "server"
)

// Limit types reported by the backend on 429 responses.
const (
	LimitPerMinute = "rpm"
	LimitPerDay    = "rpd"
)

const (
	networkMessage    = "Could not reach the mxradar service. Check your connection and try again."
	authMessage       = "Your session has expired. Please sign in again."
	rateLimitFallback = "Rate limit exceeded. Please try again later."
)

// Error is a classified API error. Kind is always set; Status is the HTTP
// status code, or 0 for KindNetwork. The rate-limit fields are populated only
// for KindRateLimit and only when the backend supplied them.
type Error struct {
	Kind    Kind
	Status  int
	Message string

	// Rate-limit metadata.
	Limit     int
	LimitType string
	Reset     time.Time

	cause error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// Is makes errors.Is(err, &Error{Kind: k}) match on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Network classifies a transport-level failure. The cause is preserved for
// logging but never shown to the user.
func Network(cause error) *Error {
	return &Error{Kind: KindNetwork, Message: networkMessage, cause: cause}
}

// Auth classifies an HTTP 401 on an authenticated call.
func Auth() *Error {
	return &Error{Kind: KindAuth, Status: 401, Message: authMessage}
}

// Server classifies a generic 4xx/5xx response. The backend-supplied message
// is used when present, otherwise a status-code phrase.
func Server(status int, message string) *Error {
	if message == "" {
		message = fmt.Sprintf("HTTP error, status %d", status)
	}
	return &Error{Kind: KindServer, Status: status, Message: message}
}

// RateLimit classifies an HTTP 429 response. A backend-supplied message wins;
// otherwise one is synthesized from the limit kind and the reset timestamp,
// and degrades to a generic retry-later phrase when either is missing.
// now is injected to keep message construction deterministic in tests.
func RateLimit(message string, limit int, limitType string, reset time.Time, now time.Time) *Error {
	e := &Error{
		Kind:      KindRateLimit,
		Status:    429,
		Limit:     limit,
		LimitType: limitType,
		Reset:     reset,
	}
	if message != "" {
		e.Message = message
		return e
	}
	e.Message = synthesizeRateLimitMessage(limit, limitType, reset, now)
	return e
}

func synthesizeRateLimitMessage(limit int, limitType string, reset time.Time, now time.Time) string {
	quota := ""
	switch limitType {
	case LimitPerMinute:
		quota = fmt.Sprintf("%d requests per minute", limit)
	case LimitPerDay:
		quota = fmt.Sprintf("%d requests per day", limit)
	}

	when := "later"
	if !reset.IsZero() && reset.After(now) {
		when = HumanizeReset(reset, now)
	}

	if quota == "" {
		if when == "later" {
			return rateLimitFallback
		}
		return fmt.Sprintf("Rate limit exceeded. Please try again %s.", when)
	}
	if when == "later" {
		return fmt.Sprintf("Rate limit of %s exceeded. Please try again later.", quota)
	}
	return fmt.Sprintf("Rate limit of %s exceeded. Please try again %s.", quota, when)
}

// HumanizeReset renders the time remaining until reset as "in N minute(s)"
// when under an hour, else "in N hour(s)". Both counts round up: 90 seconds
// is "in 2 minute(s)", 125 minutes is "in 3 hour(s)".
func HumanizeReset(reset time.Time, now time.Time) string {
	minutes := math.Ceil(reset.Sub(now).Minutes())
	if minutes < 1 {
		minutes = 1
	}
	if minutes < 60 {
		return fmt.Sprintf("in %d minute(s)", int(minutes))
	}
	hours := int(math.Ceil(minutes / 60))
	return fmt.Sprintf("in %d hour(s)", hours)
}
