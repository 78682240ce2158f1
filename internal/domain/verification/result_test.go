package verification

import (
	"encoding/base64"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPayload = `{
	"isGenuine": true,
	"confidenceScore": 97,
	"imageAnalysis": {"title": "Image Analysis", "description": "Packaging matches.", "isPositive": true},
	"barcodeAnalysis": {"title": "Barcode Analysis", "description": "Barcode registered.", "isPositive": true},
	"textAnalysis": {"title": "Text Analysis", "description": "No typos found.", "isPositive": true}
}`

func TestParseResultValid(t *testing.T) {
	res, err := ParseResult([]byte(validPayload))
	require.NoError(t, err)
	assert.True(t, res.IsGenuine)
	assert.Equal(t, 97, res.ConfidenceScore)
	assert.Equal(t, "Image Analysis", res.ImageAnalysis.Title)
	assert.True(t, res.BarcodeAnalysis.IsPositive)
	assert.Equal(t, "No typos found.", res.TextAnalysis.Description)
}

func TestParseResultMissingFields(t *testing.T) {
	cases := map[string]string{
		"no verdict": `{"confidenceScore": 50,
			"imageAnalysis": {"title":"t","description":"d","isPositive":true},
			"barcodeAnalysis": {"title":"t","description":"d","isPositive":true},
			"textAnalysis": {"title":"t","description":"d","isPositive":true}}`,
		"no score": `{"isGenuine": true,
			"imageAnalysis": {"title":"t","description":"d","isPositive":true},
			"barcodeAnalysis": {"title":"t","description":"d","isPositive":true},
			"textAnalysis": {"title":"t","description":"d","isPositive":true}}`,
		"no barcode section": `{"isGenuine": true, "confidenceScore": 50,
			"imageAnalysis": {"title":"t","description":"d","isPositive":true},
			"textAnalysis": {"title":"t","description":"d","isPositive":true}}`,
		"incomplete section": `{"isGenuine": true, "confidenceScore": 50,
			"imageAnalysis": {"title":"t"},
			"barcodeAnalysis": {"title":"t","description":"d","isPositive":true},
			"textAnalysis": {"title":"t","description":"d","isPositive":true}}`,
		"no isPositive": `{"isGenuine": true, "confidenceScore": 50,
			"imageAnalysis": {"title":"t","description":"d"},
			"barcodeAnalysis": {"title":"t","description":"d"},
			"textAnalysis": {"title":"t","description":"d"}}`,
		"not json": `the model said maybe`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseResult([]byte(payload))
			assert.ErrorIs(t, err, ErrMalformedResult)
		})
	}
}

func TestParseResultClampsScore(t *testing.T) {
	for raw, want := range map[int]int{-5: 0, 0: 0, 100: 100, 250: 100} {
		payload := `{"isGenuine": false, "confidenceScore": ` + strconv.Itoa(raw) + `,
			"imageAnalysis": {"title":"t","description":"d","isPositive":false},
			"barcodeAnalysis": {"title":"t","description":"d","isPositive":false},
			"textAnalysis": {"title":"t","description":"d","isPositive":false}}`
		res, err := ParseResult([]byte(payload))
		require.NoError(t, err)
		assert.Equal(t, want, res.ConfidenceScore)
	}
}

func TestDataURI(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	uri := DataURI("data:image/png;base64," + base64.StdEncoding.EncodeToString(payload))

	assert.Equal(t, "image/png", uri.MIMEType())
	assert.True(t, uri.IsImage())

	data, err := uri.Data()
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestDataURIInvalid(t *testing.T) {
	_, err := DataURI("not a data uri").Data()
	assert.ErrorIs(t, err, ErrInvalidDataURI)

	_, err = DataURI("data:image/png;base64,%%%%").Data()
	assert.ErrorIs(t, err, ErrInvalidDataURI)

	assert.Equal(t, "", DataURI("plain text").MIMEType())
	assert.False(t, DataURI("data:application/json;base64,e30=").IsImage())
}

func TestScannedCodePlaceholderIsImage(t *testing.T) {
	uri := DataURI(ScannedCodePlaceholder)
	assert.True(t, uri.IsImage())
	_, err := uri.Data()
	assert.NoError(t, err)
}
