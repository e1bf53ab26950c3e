package supplier

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"
)

var retryAfterPattern = regexp.MustCompile(`after (\d+) seconds`)

// APIError is a non-success reply from the supplier, either by HTTP status or by envelope code.
type APIError struct {
	StatusCode int
	Code       int
	Reason     string
	Message    string
	// RetryAfterHeader is the raw Retry-After header value, if any.
	RetryAfterHeader string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Reason
	}
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("supplier api error (status %d, code %d): %s", e.StatusCode, e.Code, msg)
}

func (e *APIError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.Code == http.StatusTooManyRequests
}

func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound || e.Code == http.StatusNotFound
}

// RetryAfter is the delay the supplier asked for, taken from the message text
// ("... after N seconds") or the Retry-After header. Zero means no suggestion.
func (e *APIError) RetryAfter() time.Duration {
	if m := retryAfterPattern.FindStringSubmatch(e.Message); m != nil {
		if secs, err := strconv.Atoi(m[1]); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	if secs, err := strconv.Atoi(e.RetryAfterHeader); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}

// IsRateLimited classifies errors for utils.WithRetry: only rate limits are retried.
func IsRateLimited(err error) (bool, time.Duration) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.RateLimited() {
		return true, apiErr.RetryAfter()
	}
	return false, 0
}
