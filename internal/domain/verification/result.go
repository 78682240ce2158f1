package verification

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedResult indicates a result payload that does not satisfy the
// required schema (missing fields, wrong types, not an object).
var ErrMalformedResult = errors.New("verification: malformed result")

type rawDetail struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsPositive  *bool   `json:"isPositive"`
}

type rawResult struct {
	IsGenuine       *bool      `json:"isGenuine"`
	ConfidenceScore *int       `json:"confidenceScore"`
	ImageAnalysis   *rawDetail `json:"imageAnalysis"`
	BarcodeAnalysis *rawDetail `json:"barcodeAnalysis"`
	TextAnalysis    *rawDetail `json:"textAnalysis"`
}

// ParseResult decodes an untrusted AI response into a Result. Every field is
// required; ConfidenceScore is clamped into [0,100] on ingestion.
func ParseResult(data []byte) (*Result, error) {
	var raw rawResult
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResult, err)
	}
	if raw.IsGenuine == nil {
		return nil, fmt.Errorf("%w: missing isGenuine", ErrMalformedResult)
	}
	if raw.ConfidenceScore == nil {
		return nil, fmt.Errorf("%w: missing confidenceScore", ErrMalformedResult)
	}

	res := &Result{
		IsGenuine:       *raw.IsGenuine,
		ConfidenceScore: clampScore(*raw.ConfidenceScore),
	}
	for _, d := range []struct {
		name string
		src  *rawDetail
		dst  *AnalysisDetail
	}{
		{"imageAnalysis", raw.ImageAnalysis, &res.ImageAnalysis},
		{"barcodeAnalysis", raw.BarcodeAnalysis, &res.BarcodeAnalysis},
		{"textAnalysis", raw.TextAnalysis, &res.TextAnalysis},
	} {
		if d.src == nil {
			return nil, fmt.Errorf("%w: missing %s", ErrMalformedResult, d.name)
		}
		if d.src.Title == nil || d.src.Description == nil || d.src.IsPositive == nil {
			return nil, fmt.Errorf("%w: incomplete %s", ErrMalformedResult, d.name)
		}
		*d.dst = AnalysisDetail{
			Title:       *d.src.Title,
			Description: *d.src.Description,
			IsPositive:  *d.src.IsPositive,
		}
	}
	return res, nil
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
