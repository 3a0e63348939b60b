// Package delivery hands downloaded media to the user through one of three host capabilities:
// sharing files (saving to the gallery), sharing a link, or forcing a file download.
package delivery

import (
	"context"
	"strings"
)

// Blob is an in-memory media payload.
type Blob struct {
	Data []byte
	Type string
}

// Size returns the payload length in bytes.
func (b *Blob) Size() int {
	return len(b.Data)
}

// File is a named blob.
type File struct {
	Blob
	Name string
}

// NewFile wraps data into a file called name with media type typ.
func NewFile(data []byte, name, typ string) *File {
	return &File{Blob: Blob{Data: data, Type: typ}, Name: name}
}

// IsMedia reports whether the file carries a video or image payload.
func (f *File) IsMedia() bool {
	return strings.HasPrefix(f.Type, "video/") || strings.HasPrefix(f.Type, "image/")
}

// Handle is a transient host reference exposing a blob to the download mechanism.
// It must be released once the download has been triggered, whatever the outcome.
type Handle interface {
	URL() string
	Release() error
}

// Capabilities is the set of delivery mechanisms the host supports.
type Capabilities struct {
	ShareFiles bool
	ShareLink  bool
	Download   bool
}

// Channel is the host environment's ability to hand media to the user.
type Channel interface {
	// Capabilities probes which mechanisms are available.
	Capabilities() Capabilities
	// CanShareFiles reports whether these specific files can be shared.
	CanShareFiles(files ...*File) bool
	// ShareFiles hands files to the native share target (the gallery).
	ShareFiles(ctx context.Context, files []*File, title string) error
	// ShareLink shares a URL with a title.
	ShareLink(ctx context.Context, title, url string) error
	// Expose acquires a transient handle for blob.
	Expose(blob *Blob) (Handle, error)
	// TriggerDownload persists the exposed bytes to the user's download location as filename.
	TriggerDownload(ctx context.Context, handle Handle, filename string) error
}
