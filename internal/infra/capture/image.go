package capture

import (
	"encoding/base64"
	"net/http"
	"os"

	"github.com/bryanwahyu/authentiscan/internal/domain/verification"
)

// EncodeImage converts raw image bytes into the data-URI representation the
// orchestrator and history consume. The media type is sniffed from content.
func EncodeImage(data []byte) verification.DataURI {
	mime := http.DetectContentType(data)
	return verification.DataURI("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data))
}

// ReadImageFile loads a user-supplied image file into a data URI. An
// unreadable file yields an empty URI and no error: the capture flow treats
// it as "no preview set" rather than crashing.
func ReadImageFile(path string) verification.DataURI {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return EncodeImage(data)
}
