package bookinstance

import "errors"

var (
	ErrInstanceNotFound = errors.New("book copy not found")
)
