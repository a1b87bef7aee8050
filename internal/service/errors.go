package service

import (
	"errors"
	"fmt"
)

var (
	// ErrMaxRetriesExceeded возвращается когда не удалось сгенерировать уникальный код
	// после максимального количества попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for code generation")

	ErrInvalidURL = errors.New("invalid URL")

	ErrInvalidSlug       = errors.New("invalid custom slug")
	ErrInvalidSlugChars  = fmt.Errorf("%w: only letters, digits, '-' and '_' are allowed", ErrInvalidSlug)
	ErrInvalidSlugLength = fmt.Errorf("%w: length must be between %d and %d", ErrInvalidSlug, MinSlugLength, MaxSlugLength)

	ErrQuotaExceeded = errors.New("custom slug quota exceeded")
	ErrSlugTaken     = errors.New("custom slug already taken")
	ErrNotFound      = errors.New("link not found")
)
