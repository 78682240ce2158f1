package ai

import "errors"

// Failure taxonomy for AI calls. Every failure crossing the orchestrator
// boundary is one of these; anything else gets the generic message.
var (
	// ErrAPIKeyInvalid indicates credentials are missing or rejected.
	ErrAPIKeyInvalid = errors.New("ai: api key invalid")
	// ErrNetwork indicates a transport/connectivity failure.
	ErrNetwork = errors.New("ai: network error")
	// ErrInvalidImageData indicates the payload was rejected by the service.
	ErrInvalidImageData = errors.New("ai: invalid image data")
	// ErrServiceUnavailable indicates an upstream 5xx-class or timeout failure.
	ErrServiceUnavailable = errors.New("ai: service unavailable")
	// ErrResponseInvalid indicates a response that fails schema validation.
	ErrResponseInvalid = errors.New("ai: invalid response")
	// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
	ErrQuotaExceeded = errors.New("ai: quota exceeded")
)

// UserMessage translates an AI failure into the single string shown to the
// user. The raw error is for logs only.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrAPIKeyInvalid):
		return "There's an issue with the application's configuration. Please contact support."
	case errors.Is(err, ErrNetwork):
		return "Failed to connect to the AI service. Please check your internet connection and try again."
	case errors.Is(err, ErrInvalidImageData):
		return "The uploaded image could not be processed. It might be corrupted or in an unsupported format. Please try a different photo."
	case errors.Is(err, ErrServiceUnavailable), errors.Is(err, ErrQuotaExceeded):
		return "The AI verification service is temporarily unavailable. Please try again in a few moments."
	case errors.Is(err, ErrResponseInvalid):
		return "The AI returned an unexpected response. Please try again."
	default:
		return "Failed to analyze the product. The AI model might be unavailable. Please try again later."
	}
}
