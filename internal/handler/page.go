package handler

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexPage []byte

// PageHandler serves the single-page analysis form and the default prompt
// template it is prefilled with.
type PageHandler struct {
	defaultPrompt string
}

func NewPageHandler(defaultPrompt string) *PageHandler {
	return &PageHandler{defaultPrompt: defaultPrompt}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}

// DefaultPrompt godoc
// @Summary Default prompt template
// @Description Returns the prompt template the form is prefilled with.
// @Tags prompt
// @Produce plain
// @Success 200 {string} string
// @Router /api/prompt/default [get]
func (h *PageHandler) DefaultPrompt(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(h.defaultPrompt))
}
