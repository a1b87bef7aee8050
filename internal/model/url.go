package model

import "time"

type Code string

func (c Code) String() string {
	return string(c)
}

type URL string

func (U URL) String() string {
	return string(U)
}

// LinkRecord представляет сохранённую короткую ссылку
type LinkRecord struct {
	Code         Code      `json:"code"`
	URL          URL       `json:"url"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
	IsCustomSlug bool      `json:"isCustomSlug"`
	// OwnerIdentifier заполняется только для пользовательских слагов
	OwnerIdentifier string `json:"ownerIdentifier,omitempty"`
}

// IsExpired сообщает, истёк ли срок жизни записи на момент now
func (r LinkRecord) IsExpired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !now.Before(r.ExpiresAt)
}

// ShortenRequest тело запроса POST /api/shorten
type ShortenRequest struct {
	URL        string `json:"url"`
	CustomSlug string `json:"customSlug,omitempty"`
}

// ShortenResponse тело ответа POST /api/shorten
type ShortenResponse struct {
	ID           string `json:"id"`
	ShortCode    string `json:"shortCode"`
	ShortURL     string `json:"shortUrl"`
	OriginalURL  string `json:"originalUrl"`
	ExpiresAt    int64  `json:"expiresAt"`
	IsCustomSlug bool   `json:"isCustomSlug"`
}

// DeleteResponse тело ответа DELETE /api/shorten
type DeleteResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// QuotaResponse тело ответа GET /api/shorten/quota
type QuotaResponse struct {
	CustomSlugUsed bool `json:"customSlugUsed"`
}
