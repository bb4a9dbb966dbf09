package models

// Image is the result of a successful decryption: the recovered bytes plus
// whatever the format sniffer could tell about them. All fields are transient;
// an Image lives only for the duration of one request.
type Image struct {
	// Data is the raw recovered payload, returned even when the format
	// could not be identified.
	Data []byte `json:"-"`

	// Format is the sniffed image format ("png", "jpeg"). Empty when the
	// decrypted bytes do not carry a recognised image signature, a warning
	// condition surfaced to the user instead of silently assuming PNG.
	Format string `json:"format"`

	// Width and Height are the image bounds in pixels, zero when Format is
	// empty.
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Known reports whether the image format was identified.
func (i Image) Known() bool {
	return i.Format != ""
}
