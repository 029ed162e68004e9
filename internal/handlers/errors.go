package handlers

import (
	"errors"

	"github.com/Max-glbt/Medi4ll/internal/api"
)

func isUnauthorized(err error) bool {
	return errors.Is(err, api.ErrUnauthorized)
}

func isUnavailable(err error) bool {
	return errors.Is(err, api.ErrUnavailable)
}

func asStatusError(err error, target **api.StatusError) bool {
	return errors.As(err, target)
}

// backendMessage surfaces the backend's own error text when it sent one,
// otherwise the provided fallback. Pages show exactly one message string.
func backendMessage(err error, fallback string) string {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return fallback
}
