package handler

import (
	"bytes"
	_ "embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/avc-dev/shortlinks/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:embed templates/not_found.html
var notFoundHTML string

var notFoundPage = template.Must(template.New("not_found").Parse(notFoundHTML))

// GetURL обрабатывает GET /{code}: 302 на исходный адрес или HTML страница 404
func (h *Handler) GetURL(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	target, err := h.usecase.ResolveRedirect(req.Context(), code)
	if err != nil {
		if errors.Is(err, usecase.ErrURLNotFound) {
			h.renderNotFound(w, code)
			return
		}
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, target, http.StatusFound)
}

func (h *Handler) renderNotFound(w http.ResponseWriter, code string) {
	var buf bytes.Buffer
	if err := notFoundPage.Execute(&buf, struct{ Code string }{Code: code}); err != nil {
		h.logger.Error("failed to render not found page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(buf.Bytes())
}
