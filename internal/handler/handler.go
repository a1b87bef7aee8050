package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/usecase"
	"go.uber.org/zap"
)

const (
	msgInvalidBody   = "Invalid request body"
	msgURLRequired   = "URL is required"
	msgInvalidURL    = "Invalid URL"
	msgInvalidSlug   = "Custom slug must be 2-20 characters and contain only letters, numbers, hyphens, and underscores"
	msgQuotaExceeded = "You have already used your 1 free custom slug"
	msgSlugTaken     = "This custom slug is already taken"
	msgCodeRequired  = "Code is required"
	msgLinkNotFound  = "Link not found"
	msgInternal      = "Internal server error"
)

//go:generate mockery --name URLUsecase

// URLUsecase определяет интерфейс бизнес-логики, нужной HTTP слою
type URLUsecase interface {
	CreateShortLink(ctx context.Context, req model.ShortenRequest, identity string) (model.ShortenResponse, error)
	ResolveRedirect(ctx context.Context, code string) (string, error)
	DeleteLink(ctx context.Context, code string) error
	HasUsedCustomSlug(ctx context.Context, identity string) (bool, error)
	Ping(ctx context.Context) error
}

// Handler обрабатывает HTTP запросы сервиса коротких ссылок
type Handler struct {
	usecase URLUsecase
	logger  *zap.Logger
}

// New создает новый Handler
func New(usecase URLUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, model.ErrorResponse{Error: message})
}

// handleError преобразует ошибки usecase в HTTP ответ
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyURL):
		h.writeError(w, http.StatusBadRequest, msgURLRequired)
	case errors.Is(err, usecase.ErrInvalidURL):
		h.writeError(w, http.StatusBadRequest, msgInvalidURL)
	case errors.Is(err, usecase.ErrInvalidSlug):
		h.writeError(w, http.StatusBadRequest, msgInvalidSlug)
	case errors.Is(err, usecase.ErrEmptyCode):
		h.writeError(w, http.StatusBadRequest, msgCodeRequired)
	case errors.Is(err, usecase.ErrQuotaExceeded):
		h.writeError(w, http.StatusForbidden, msgQuotaExceeded)
	case errors.Is(err, usecase.ErrSlugTaken):
		h.writeError(w, http.StatusConflict, msgSlugTaken)
	case errors.Is(err, usecase.ErrURLNotFound):
		h.writeError(w, http.StatusNotFound, msgLinkNotFound)
	default:
		h.logger.Error("request failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, msgInternal)
	}
}
