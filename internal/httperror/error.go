// Package httperror provides the common error envelope for the API.
package httperror

type Error struct {
	Message string `json:"error" example:"the allocation ratios must sum to 100%"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
