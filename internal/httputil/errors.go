package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the request body could not be parsed, verify that it is valid JSON")
	ErrRequestBodyEmpty = errors.New("the request must have a body")
	ErrInvalidUUID      = errors.New("the ID in the URL is not a valid UUID")
)
