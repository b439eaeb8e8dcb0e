package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrUnprocessable       = errors.New("unprocessable value")
	ErrInternalServerError = errors.New("internal server error")

	// ErrInvalidAddress is returned by NewHTTPAdapters for an empty or
	// malformed server address.
	ErrInvalidAddress = errors.New("invalid adapter http address")
)
