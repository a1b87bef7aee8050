package handler

import (
	"net/http"

	"github.com/avc-dev/shortlinks/internal/model"
)

// DeleteLink обрабатывает DELETE /api/shorten?code=<code>.
// Удаление несуществующей ссылки тоже успешно.
func (h *Handler) DeleteLink(w http.ResponseWriter, req *http.Request) {
	code := req.URL.Query().Get("code")

	if err := h.usecase.DeleteLink(req.Context(), code); err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, model.DeleteResponse{Success: true})
}
