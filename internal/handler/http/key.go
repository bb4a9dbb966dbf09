package http

import (
	"encoding/json"
	"net/http"

	"github.com/Vyshusym/image-encryption/internal/logger"
	"github.com/Vyshusym/image-encryption/models"
)

// deriveKey handles POST /api/key: a JSON body with the passphrase, answered
// with the derived key. Derivation is deterministic and accepts any input,
// so this endpoint never fails on valid JSON.
func (h *Handler) deriveKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DeriveKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.deriveKey").Msg("invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	key := h.services.ImageCipherService.DeriveKey(r.Context(), req.Passphrase)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.DeriveKeyResponse{Key: key})
}
