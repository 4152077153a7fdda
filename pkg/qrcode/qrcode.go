// Package qrcode renders provisioning URIs as PNG data URLs that a browser
// can drop straight into an <img> tag.
package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the image edge in pixels used when none is configured.
const DefaultSize = 256

const dataURLPrefix = "data:image/png;base64,"

var (
	ErrEmptyContent = errors.New("qrcode: content cannot be empty")
	ErrEncode       = errors.New("qrcode: failed to encode")
)

// Renderer produces QR images at a fixed size.
type Renderer struct {
	Size int
}

// PNG encodes content as a PNG image.
func (r Renderer) PNG(content string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	size := r.Size
	if size <= 0 {
		size = DefaultSize
	}

	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return png, nil
}

// DataURL encodes content and returns it as a data:image/png;base64 URL.
func (r Renderer) DataURL(content string) (string, error) {
	png, err := r.PNG(content)
	if err != nil {
		return "", err
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(png), nil
}
