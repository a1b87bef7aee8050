package handler

import (
	"net/http"

	"github.com/avc-dev/shortlinks/internal/middleware"
	"github.com/avc-dev/shortlinks/internal/model"
)

// CustomSlugQuota обрабатывает GET /api/shorten/quota
func (h *Handler) CustomSlugQuota(w http.ResponseWriter, req *http.Request) {
	identity := middleware.IdentityFromContext(req.Context())

	used, err := h.usecase.HasUsedCustomSlug(req.Context(), identity)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, model.QuotaResponse{CustomSlugUsed: used})
}
