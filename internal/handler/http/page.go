package http

import (
	_ "embed"
	"net/http"
)

//go:embed web/index.html
var indexPage []byte

// page handles GET /: the single interactive page. All state lives in the
// browser; the page talks to the API endpoints via fetch and never reloads.
func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}
