package auction

import (
	"fmt"
	"net/http"

	"plate-auction-web/internal/plateerrors"
)

// StatusError is returned when the auction service answers with a non-2xx status
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: auction service responded %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: auction service responded %d: %s", e.Op, e.StatusCode, e.Body)
}

// Unwrap classifies the status so callers can match with errors.Is
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return plateerrors.ErrUnauthorized
	default:
		return plateerrors.ErrUpstream
	}
}
