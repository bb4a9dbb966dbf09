// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vyshusym

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Vyshusym/image-encryption/internal/imaging"
	"github.com/Vyshusym/image-encryption/internal/logger"
	"github.com/Vyshusym/image-encryption/models"
)

const (
	// imageFormatHeader reports the sniffed format of a decrypted payload,
	// or "unknown" when no image signature was recognised.
	imageFormatHeader = "X-Image-Format"

	unknownFormat = "unknown"
)

// encrypt handles POST /api/encrypt: multipart form with a "passphrase"
// field and a "file" part holding a JPEG or PNG image. On success the Fernet
// token is returned as an attachment download.
func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	passphrase, payload, err := h.readUpload(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("invalid upload")
		writeError(w, err)
		return
	}

	token, err := h.services.ImageCipherService.EncryptImage(r.Context(), passphrase, payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("error encrypting image")
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="encrypted_image.enc"`)
	w.WriteHeader(http.StatusOK)
	w.Write(token)
}

// decrypt handles POST /api/decrypt: multipart form with a "passphrase"
// field and a "file" part holding a previously downloaded .enc blob. On
// success the recovered image is returned as an attachment download with its
// sniffed MIME type; when the format is undetectable the raw bytes are still
// returned, flagged via the X-Image-Format header.
func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	passphrase, payload, err := h.readUpload(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.decrypt").Msg("invalid upload")
		writeError(w, err)
		return
	}

	img, err := h.services.ImageCipherService.DecryptImage(r.Context(), passphrase, payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.decrypt").Msg("error decrypting image")
		writeError(w, err)
		return
	}

	if !img.Known() {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", `attachment; filename="decrypted_image.bin"`)
		w.Header().Set(imageFormatHeader, unknownFormat)
		w.WriteHeader(http.StatusOK)
		w.Write(img.Data)
		return
	}

	filename := fmt.Sprintf("decrypted_image.%s", imaging.Ext(img.Format))
	w.Header().Set("Content-Type", imaging.MIMEType(img.Format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set(imageFormatHeader, img.Format)
	w.WriteHeader(http.StatusOK)
	w.Write(img.Data)
}

// readUpload extracts the passphrase field and the file part from a
// multipart request, enforcing the configured upload size limit.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (passphrase string, payload []byte, err error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, _, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			return "", nil, ErrUploadTooLarge
		case errors.Is(err, http.ErrMissingFile):
			return "", nil, ErrMissingFile
		default:
			return "", nil, errors.Join(ErrMalformedUpload, err)
		}
	}
	defer file.Close()

	payload, err = io.ReadAll(file)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return "", nil, ErrUploadTooLarge
		}
		return "", nil, fmt.Errorf("read file part: %w", err)
	}

	return r.FormValue("passphrase"), payload, nil
}

// writeError reports err to the client as a JSON body with the status code
// resolved by statusFromError. The message carries the underlying error text
// without classifying the cause, matching the inline error widgets of the UI.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFromError(err))
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: err.Error()})
}
