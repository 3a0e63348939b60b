package session

import "errors"

var (
	// ErrBusy is returned when another lookup, download or delivery is already in flight.
	ErrBusy = errors.New("another operation is in progress")

	// ErrNoMedia is returned by delivery operations invoked before a successful download.
	ErrNoMedia = errors.New("no video URL available, download the video first")

	// ErrUnsupportedCapability is returned when the host cannot save the file to its gallery.
	ErrUnsupportedCapability = errors.New("your device does not support saving to gallery")

	// ErrNotMedia is returned when the proxied payload is neither a video nor an image.
	ErrNotMedia = errors.New("the backend did not return a video")

	// ErrUnknownQuality is returned when selecting a quality that was not offered.
	ErrUnknownQuality = errors.New("unknown quality")
)
