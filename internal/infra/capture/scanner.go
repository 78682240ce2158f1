package capture

import (
	"context"
	"errors"
	"strings"
	"time"
)

const (
	// DefaultScanDelay is how long the simulated decode runs before the scan
	// is declared successful. No real barcode decoding occurs.
	DefaultScanDelay = 4 * time.Second
	// DefaultIndicatorDelay is how long the success indicator shows before
	// completion is signalled.
	DefaultIndicatorDelay = 1500 * time.Millisecond
)

// ErrEmptyCode rejects a manual submission with no content.
var ErrEmptyCode = errors.New("capture: empty code")

// Scanner drives one code-capture session. The camera path acquires the
// stream, simulates a scan, shows the success indicator, then completes; the
// manual path skips acquisition but follows the same indicator-then-complete
// sequence. Cancelling the context stops the pending timers and the stream
// is released on every exit path.
type Scanner struct {
	Device         Device
	ScanDelay      time.Duration
	IndicatorDelay time.Duration
}

func NewScanner(device Device) *Scanner {
	return &Scanner{
		Device:         device,
		ScanDelay:      DefaultScanDelay,
		IndicatorDelay: DefaultIndicatorDelay,
	}
}

// Scan runs the camera path. A nil error means the session completed and the
// orchestrator may run the code verification.
func (s *Scanner) Scan(ctx context.Context) error {
	stream, err := s.Device.Open(ctx)
	if err != nil {
		return err
	}
	defer stream.Close()

	if err := sleep(ctx, s.ScanDelay); err != nil {
		return err
	}
	return sleep(ctx, s.IndicatorDelay)
}

// Manual runs the manual-entry path and returns the trimmed code. The code
// is reported to the caller but the verification branch does not consume it.
func (s *Scanner) Manual(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", ErrEmptyCode
	}
	if err := sleep(ctx, s.IndicatorDelay); err != nil {
		return "", err
	}
	return code, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
