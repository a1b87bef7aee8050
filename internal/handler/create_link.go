package handler

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/shortlinks/internal/middleware"
	"github.com/avc-dev/shortlinks/internal/model"
	"go.uber.org/zap"
)

// shortenPayload принимает поля любого типа: нестроковый url считается
// отсутствующим, нестроковый customSlug игнорируется
type shortenPayload struct {
	URL        any `json:"url"`
	CustomSlug any `json:"customSlug"`
}

func stringField(v any) string {
	s, _ := v.(string)
	return s
}

// CreateLink обрабатывает POST /api/shorten
func (h *Handler) CreateLink(w http.ResponseWriter, req *http.Request) {
	var payload shortenPayload
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	request := model.ShortenRequest{
		URL:        stringField(payload.URL),
		CustomSlug: stringField(payload.CustomSlug),
	}
	identity := middleware.IdentityFromContext(req.Context())

	response, err := h.usecase.CreateShortLink(req.Context(), request, identity)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response)
}
