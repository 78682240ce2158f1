package verification

import (
	"encoding/base64"
	"errors"
	"strings"
)

// DataURI holds an image as a base64 data URI, the representation produced by
// image capture and stored as the history preview.
type DataURI string

var ErrInvalidDataURI = errors.New("verification: invalid data URI")

// MIMEType extracts the media type between "data:" and ";".
func (d DataURI) MIMEType() string {
	s := string(d)
	if !strings.HasPrefix(s, "data:") {
		return ""
	}
	rest := s[len("data:"):]
	if i := strings.IndexAny(rest, ";,"); i >= 0 {
		return rest[:i]
	}
	return ""
}

// Data decodes the base64 payload after the comma.
func (d DataURI) Data() ([]byte, error) {
	s := string(d)
	i := strings.IndexByte(s, ',')
	if !strings.HasPrefix(s, "data:") || i < 0 {
		return nil, ErrInvalidDataURI
	}
	raw, err := base64.StdEncoding.DecodeString(s[i+1:])
	if err != nil {
		return nil, errors.Join(ErrInvalidDataURI, err)
	}
	return raw, nil
}

// IsImage reports whether the URI carries an image/* payload.
func (d DataURI) IsImage() bool {
	return strings.HasPrefix(d.MIMEType(), "image/")
}
