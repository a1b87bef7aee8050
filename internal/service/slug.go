package service

const (
	MinSlugLength = 2
	MaxSlugLength = 20
)

func isSlugChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_'
}

// ValidateSlug проверяет пользовательский слаг: сначала алфавит, затем длину.
// Регистр сохраняется, зарезервированных слов нет.
func ValidateSlug(slug string) error {
	for i := 0; i < len(slug); i++ {
		if !isSlugChar(slug[i]) {
			return ErrInvalidSlugChars
		}
	}

	if len(slug) < MinSlugLength || len(slug) > MaxSlugLength {
		return ErrInvalidSlugLength
	}

	return nil
}
