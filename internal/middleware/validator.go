package middleware

import (
	"fmt"
	"strings"
)

// Input validation and sanitization utilities

// MaxImageBytes caps uploaded data URIs; anything larger is rejected before
// it reaches the AI provider.
const MaxImageBytes = 8 << 20

// ValidateImageDataURI checks that the payload is a base64 image data URI of
// acceptable size.
func ValidateImageDataURI(uri string) error {
	if uri == "" {
		return fmt.Errorf("imagePreview cannot be empty")
	}
	if !strings.HasPrefix(uri, "data:image/") {
		return fmt.Errorf("imagePreview must be an image data URI")
	}
	if !strings.Contains(uri, ",") {
		return fmt.Errorf("imagePreview is not a valid data URI")
	}
	if len(uri) > MaxImageBytes {
		return fmt.Errorf("imagePreview exceeds the %d byte limit", MaxImageBytes)
	}
	return nil
}

// ValidateCode validates manually entered barcode/QR data.
func ValidateCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("code cannot be empty")
	}
	if len(code) > 256 {
		return fmt.Errorf("code exceeds 256 characters")
	}
	for _, r := range code {
		if r < 32 {
			return fmt.Errorf("code contains control characters")
		}
	}
	return nil
}

// ValidateChatMessage validates an assistant prompt.
func ValidateChatMessage(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("message cannot be empty")
	}
	if len(text) > 4000 {
		return fmt.Errorf("message exceeds 4000 characters")
	}
	return nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}
