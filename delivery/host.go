package delivery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/vidtogallery/vidtogallery/filesystem"
	"github.com/vidtogallery/vidtogallery/key"
	"github.com/vidtogallery/vidtogallery/log"
	"github.com/vidtogallery/vidtogallery/open"
	"github.com/vidtogallery/vidtogallery/where"
)

// Clipboard is the system clipboard used for link sharing.
type Clipboard interface {
	Supported() bool
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) Supported() bool            { return !clipboard.Unsupported }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Host is the terminal implementation of Channel.
// The gallery folder backs file sharing, the clipboard backs link sharing
// and the downloads folder backs forced downloads. An empty folder disables its capability.
type Host struct {
	GalleryDir   string
	DownloadsDir string
	TempDir      string
	Reveal       bool
	Clipboard    Clipboard
	Opener       func(path string) error

	// OnDelivered, when set, is told where each delivery ended up.
	OnDelivered func(strategy Strategy, location string)
}

var _ Channel = (*Host)(nil)

// NewHost builds a Host from the gallery.* and downloads.* configuration keys.
func NewHost() *Host {
	h := &Host{
		DownloadsDir: where.Downloads(),
		TempDir:      where.Temp(),
		Reveal:       viper.GetBool(key.GalleryReveal),
		Clipboard:    systemClipboard{},
	}
	if viper.GetBool(key.GalleryEnable) {
		h.GalleryDir = where.Gallery()
	}
	if open.Supported() {
		h.Opener = open.Start
	}
	return h
}

// Capabilities implements Channel.
func (h *Host) Capabilities() Capabilities {
	return Capabilities{
		ShareFiles: h.GalleryDir != "",
		ShareLink:  h.Clipboard != nil && h.Clipboard.Supported(),
		Download:   h.DownloadsDir != "" && h.TempDir != "",
	}
}

// CanShareFiles implements Channel. Only media files can go to the gallery.
func (h *Host) CanShareFiles(files ...*File) bool {
	if h.GalleryDir == "" || len(files) == 0 {
		return false
	}
	for _, f := range files {
		if f == nil || !f.IsMedia() {
			return false
		}
	}
	return true
}

// ShareFiles implements Channel by writing every file into the gallery folder.
func (h *Host) ShareFiles(_ context.Context, files []*File, title string) error {
	if !h.CanShareFiles(files...) {
		return fmt.Errorf("share files: %w", ErrUnsupported)
	}

	fs := filesystem.API()
	if err := fs.MkdirAll(h.GalleryDir, 0o755); err != nil {
		return fmt.Errorf("create gallery folder: %w", err)
	}

	for _, f := range files {
		path, err := filesystem.UniquePath(h.GalleryDir, f.Name)
		if err != nil {
			return err
		}
		if err := fs.WriteFile(path, f.Data, 0o644); err != nil {
			return fmt.Errorf("save %s to gallery: %w", f.Name, err)
		}

		log.WithFields(log.Fields{"path": path, "title": title}).Info("saved to gallery")
		h.delivered(Gallery, path)
	}

	if h.Reveal && h.Opener != nil {
		if err := h.Opener(h.GalleryDir); err != nil {
			log.WithError(err).Warn("reveal gallery folder")
		}
	}

	return nil
}

// ShareLink implements Channel by copying the URL to the clipboard.
func (h *Host) ShareLink(_ context.Context, title, url string) error {
	if h.Clipboard == nil || !h.Clipboard.Supported() {
		return fmt.Errorf("share link: %w", ErrUnsupported)
	}
	if err := h.Clipboard.WriteAll(url); err != nil {
		return fmt.Errorf("copy link: %w", err)
	}

	log.WithFields(log.Fields{"url": url, "title": title}).Info("link copied")
	h.delivered(Link, url)
	return nil
}

// Expose implements Channel by spilling blob into a uniquely named temporary file.
func (h *Host) Expose(blob *Blob) (Handle, error) {
	fs := filesystem.API()
	if err := fs.MkdirAll(h.TempDir, 0o755); err != nil {
		return nil, fmt.Errorf("create temp folder: %w", err)
	}

	path := filepath.Join(h.TempDir, uuid.NewString())
	if err := fs.WriteFile(path, blob.Data, 0o600); err != nil {
		return nil, fmt.Errorf("expose blob: %w", err)
	}
	return &tempHandle{path: path}, nil
}

// TriggerDownload implements Channel by copying the exposed bytes into the downloads folder.
func (h *Host) TriggerDownload(_ context.Context, handle Handle, filename string) error {
	temp, ok := handle.(*tempHandle)
	if !ok {
		return errors.New("trigger download: handle was not exposed by this host")
	}
	if h.DownloadsDir == "" {
		return fmt.Errorf("trigger download: %w", ErrUnsupported)
	}

	fs := filesystem.API()
	if err := fs.MkdirAll(h.DownloadsDir, 0o755); err != nil {
		return fmt.Errorf("create downloads folder: %w", err)
	}

	src, err := fs.Open(temp.path)
	if err != nil {
		return fmt.Errorf("open exposed blob: %w", err)
	}
	defer src.Close()

	path, err := filesystem.UniquePath(h.DownloadsDir, filename)
	if err != nil {
		return err
	}

	dst, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("write %s: %w", filename, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}

	log.WithFields(log.Fields{"path": path}).Info("file downloaded")
	h.delivered(Download, path)
	return nil
}

func (h *Host) delivered(strategy Strategy, location string) {
	if h.OnDelivered != nil {
		h.OnDelivered(strategy, location)
	}
}

// tempHandle is a temporary file standing in for a browser object URL.
type tempHandle struct {
	path string
	once sync.Once
	err  error
}

func (t *tempHandle) URL() string {
	return "file://" + filepath.ToSlash(t.path)
}

// Release removes the temporary file. Subsequent calls return the first result.
func (t *tempHandle) Release() error {
	t.once.Do(func() {
		t.err = filesystem.API().Remove(t.path)
	})
	return t.err
}
