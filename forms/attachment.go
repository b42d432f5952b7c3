package forms

import (
	"encoding/base64"
	"fmt"
	"net/http"
)

// MaxImages caps how many images a single submission may carry.
const MaxImages = 5

// ErrTooManyImages is the user-facing message shown when a selection exceeds
// the cap. The kept set is truncated rather than rejected outright.
var ErrTooManyImages = fmt.Errorf("You can upload up to %d images.", MaxImages)

// Attachment is a client-local image plus its generated preview. It exists
// only between selection and a successful submit.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
	Preview     string // data URI for thumbnail rendering
}

// NewAttachment sniffs the content type and builds the preview data URI.
func NewAttachment(name string, data []byte) Attachment {
	contentType := http.DetectContentType(data)
	return Attachment{
		Name:        name,
		ContentType: contentType,
		Data:        data,
		Preview:     fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)),
	}
}

// LimitImages truncates a selection to MaxImages, reporting ErrTooManyImages
// when anything was dropped.
func LimitImages(selected []Attachment) ([]Attachment, error) {
	if len(selected) > MaxImages {
		return selected[:MaxImages], ErrTooManyImages
	}
	return selected, nil
}

// RemoveImage drops the attachment at index i, preserving order.
func RemoveImage(selected []Attachment, i int) []Attachment {
	if i < 0 || i >= len(selected) {
		return selected
	}
	out := make([]Attachment, 0, len(selected)-1)
	out = append(out, selected[:i]...)
	out = append(out, selected[i+1:]...)
	return out
}
