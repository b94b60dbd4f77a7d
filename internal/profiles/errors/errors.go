package errors

import "errors"

var (
	ErrNotFound = errors.New("user profile not found")

	ErrUnparseableProfile = errors.New("could not extract a profile from the description")
)
