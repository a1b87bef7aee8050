package usecase

import "errors"

var (
	ErrEmptyURL           = errors.New("URL is required")
	ErrInvalidURL         = errors.New("invalid URL")
	ErrInvalidSlug        = errors.New("invalid custom slug")
	ErrQuotaExceeded      = errors.New("custom slug quota exceeded")
	ErrSlugTaken          = errors.New("custom slug already taken")
	ErrEmptyCode          = errors.New("code is required")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrURLNotFound        = errors.New("URL not found")
)
