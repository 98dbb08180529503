package components

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Image is the photo analysed by the extraction stage
type Image struct {
	// MIMEType such as image/png
	MIMEType string
	// Data is the encoded image file
	Data []byte
}

// NewImage detects the MIME type of data and returns an Image.
// It fails with a ValidationError when data is empty or not an image.
func NewImage(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, NewValidationError(FieldError{Field: "image", Message: MsgImageMissing})
	}
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, NewValidationError(FieldError{
			Field:   "image",
			Message: fmt.Sprintf("%s (%s)", MsgImageInvalid, mtype.String()),
		})
	}
	return &Image{
		MIMEType: mtype.String(),
		Data:     data,
	}, nil
}

// ReadImage reads r fully and calls NewImage
func ReadImage(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return NewImage(data)
}

// Base64 returns the standard base64 encoding of the image data
func (i *Image) Base64() string {
	return base64.StdEncoding.EncodeToString(i.Data)
}

// DataURI returns the image as a data URI
func (i *Image) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", i.MIMEType, i.Base64())
}

// MarshalJSON implements json.Marshaler. The image bytes are omitted.
func (i *Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		MIMEType string `json:"mime_type"`
		Size     int    `json:"size"`
	}{
		MIMEType: i.MIMEType,
		Size:     len(i.Data),
	})
}
