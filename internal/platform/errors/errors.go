package apperrors

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrDataSource      = errors.New("data source unavailable")
	ErrTemplateMissing = errors.New("template missing")
	ErrLinkDisabled    = errors.New("link disabled")
)
