package verification

// Status enum for the verification state machine
type Status string

const (
	StatusIdle      Status = "IDLE"
	StatusAnalyzing Status = "ANALYZING"
	StatusSuccess   Status = "SUCCESS"
	StatusError     Status = "ERROR"
)

// InputKind enum
type InputKind string

const (
	InputImage InputKind = "image"
	InputCode  InputKind = "code"
)

// AnalysisDetail is one breakdown of the verdict (image, barcode, or text)
type AnalysisDetail struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPositive  bool   `json:"isPositive"`
}

// Result is the structured genuine/counterfeit verdict. Immutable once
// produced; all three analysis sections must be present.
type Result struct {
	IsGenuine       bool           `json:"isGenuine"`
	ConfidenceScore int            `json:"confidenceScore"`
	ImageAnalysis   AnalysisDetail `json:"imageAnalysis"`
	BarcodeAnalysis AnalysisDetail `json:"barcodeAnalysis"`
	TextAnalysis    AnalysisDetail `json:"textAnalysis"`
}

// ScannedCodePlaceholder is the preview stored for code scans, a small
// inline QR-style SVG. No real frame is captured for code scans.
const ScannedCodePlaceholder = "data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciIHdpZHRoPSIxMDAiIGhlaWdodD0iMTAwIiB2aWV3Qm94PSIwIDAgMTAwIDEwMCI+CiAgPHJlY3Qgd2lkdGg9IjEwMCIgaGVpZ2h0PSIxMDAiIGZpbGw9IndoaXRlIi8+CiAgPHBhdGggZmlsbD0iYmxhY2siIGQ9Ik0xMCAxMGgzMHYzMGgtMzB6IE0xNSAxNWgyMHYyMGgtMjB6IE02MCAxMGgzMHYzMGgtMzB6IE02NSAxNWgyMHYyMGgtMjB6IE0xMCA2MGgzMHYzMGgtMzB6IE0xNSA2NWgyMHYyMGgtMjB6IE01MCA1MGgxMHYxMGgtMTB6IE02MCA1MGgxMHYxMGgtMTB6IE03MCA1MGgxMHYxMGgtMTB6IE04MCA1MGgxMHYxMGgtMTB6IE01MCA2MGgxMHYxMGgtMTB6IE02MCA2MGgxMHYxMGgtMTB6IE03MCA2MGgxMHYxMGgtMTB6IE04MCA2MGgxMHYxMGgtMTB6IE01MCA3MGgxMHYxMGgtMTB6IE02MCA3MGgxMHYxMGgtMTB6IE03MCA3MGgxMHYxMGgtMTB6IE04MCA3MGgxMHYxMGgtMTB6IE01MCA4MGgxMHYxMGgtMTB6IE02MCA4MGgxMHYxMGgtMTB6IE03MCA4MGgxMHYxMGgtMTB6IE04MCA4MGgxMHYxMGgtMTB6IE00MCA0MGgxMHYxMGgtMTB6IE00MCA1MGgxMHYxMGgtMTB6IE00MCA2MGgxMHYxMGgtMTB6IE00MCA3MGgxMHYxMGgtMTB6IE00MCA4MGgxMHYxMGgtMTB6IE0xMCA0MGgxMHYxMGgtMTB6IE0yMCA0MGgxMHYxMGgtMTB6IE0zMCA0MGgxMHYxMGgtMTB6Ii8+Cjwvc3ZnPg=="
