package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNoRedirect      = errors.New("submission request did not get redirected to the submission page")
	ErrEmptyEnvelope   = errors.New("neither data nor error were defined in the API response")
	ErrUnknownLanguage = errors.New("could not determine language id")
)

// StatusError is returned when the judge answers with an unexpected HTTP status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return formatStatus(e.Code)
}

func formatStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "Error 400, bad request, the header you provided is invalid"
	case http.StatusUnauthorized:
		return "Error 401, unauthorized, the token you provided is invalid"
	case http.StatusForbidden:
		return "Error 403, forbidden, you are trying to access the admin portion of the site"
	case http.StatusNotFound:
		return "Error 404, not found, the problem does not exist"
	case http.StatusInternalServerError:
		return "Error 500, internal server error"
	default:
		return fmt.Sprintf("Code %d, unknown network error", code)
	}
}
