package capture

import (
	"context"
	"errors"
	"io"
	"os"
)

// Camera failure categories. Each maps to its own inline message; anything
// else gets the generic one. These are surfaced in the capture flow, never
// through the verification error channel.
var (
	ErrPermissionDenied = errors.New("capture: camera permission denied")
	ErrNoDevice         = errors.New("capture: no camera device found")
)

// Stream is a live camera stream handle. Must be closed on every exit path.
type Stream interface {
	io.ReadCloser
}

// Device acquires a camera stream or fails with a categorized error.
type Device interface {
	Open(ctx context.Context) (Stream, error)
}

// CameraMessage maps an acquisition failure to the inline user message.
func CameraMessage(err error) string {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return "Camera permission was denied. Please enable it in your device settings to use the scanner."
	case errors.Is(err, ErrNoDevice):
		return "No camera found on this device. Please ensure a camera is connected and enabled."
	default:
		return "Could not access the camera. Please try again."
	}
}

// FileDevice reads the video source from a device node or file path
// (e.g. /dev/video0). Missing path means no camera; EACCES means the
// process lacks permission.
type FileDevice struct {
	Path string
}

func (d FileDevice) Open(_ context.Context) (Stream, error) {
	if d.Path == "" {
		return nil, ErrNoDevice
	}
	f, err := os.Open(d.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Join(ErrNoDevice, err)
	}
	if errors.Is(err, os.ErrPermission) {
		return nil, errors.Join(ErrPermissionDenied, err)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}
