// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vyshusym

// Package imaging wraps the standard library image registry for the two
// places the application needs to look inside an image: validating an upload
// before encryption and identifying the format of freshly decrypted bytes.
//
// Only the formats the UI accepts for upload are registered (PNG and JPEG).
// Anything else sniffs as unknown.
package imaging

import (
	"bytes"
	"errors"
	"image"

	// Register the decoders for the accepted upload formats.
	_ "image/jpeg"
	_ "image/png"
)

// ErrUnknownFormat is returned by [Sniff] when the payload does not start
// with a recognised image signature. After decryption this is a warning
// condition, not a hard failure: the bytes may still be exactly what the
// user encrypted.
var ErrUnknownFormat = errors.New("unknown image format")

// Info describes an image payload without fully decoding its pixels.
type Info struct {
	// Format is the registered decoder name, e.g. "png" or "jpeg".
	Format string

	// Width and Height are the image bounds in pixels.
	Width  int
	Height int
}

// Sniff identifies the format and bounds of data using the stdlib image
// registry. Only the header is parsed; pixel data is never decoded. Returns
// [ErrUnknownFormat] (wrapped) if no registered decoder recognises the bytes.
func Sniff(data []byte) (Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, errors.Join(ErrUnknownFormat, err)
	}

	return Info{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// MIMEType maps a sniffed format name to the MIME type used for downloads,
// e.g. "png" → "image/png". An empty format maps to the opaque
// "application/octet-stream" so callers can pass through unidentified bytes.
func MIMEType(format string) string {
	if format == "" {
		return "application/octet-stream"
	}
	return "image/" + format
}

// Ext returns the file extension (without the dot) for a sniffed format.
// It is the format name itself; the image registry already uses extension-like
// names ("png", "jpeg").
func Ext(format string) string {
	return format
}
