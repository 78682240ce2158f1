package ai

import (
	"context"

	"github.com/bryanwahyu/authentiscan/internal/domain/verification"
)

// Verifier analyzes a product photo and returns a structured verdict.
// Implementations must translate provider failures into the taxonomy in
// errors.go before returning.
type Verifier interface {
	VerifyImage(ctx context.Context, image verification.DataURI) (*verification.Result, error)
}

// CodeVerifier produces a verdict for a scanned or manually entered code.
// There is no real decoding backend; implementations are expected to be
// either the random sampler or a deterministic test double.
type CodeVerifier interface {
	VerifyCode(ctx context.Context, code string) (*verification.Result, error)
}

// Assistant answers a single free-text prompt. No transcript history is sent
// upstream; each call is independent.
type Assistant interface {
	Reply(ctx context.Context, prompt string) (string, error)
}
