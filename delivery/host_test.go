package delivery

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidtogallery/vidtogallery/filesystem"
)

type fakeClipboard struct {
	supported bool
	text      string
	err       error
}

func (c *fakeClipboard) Supported() bool { return c.supported }

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func newTestHost() (*Host, *fakeClipboard, *[]string) {
	filesystem.SetMemMapFs()
	cb := &fakeClipboard{supported: true}
	var delivered []string
	h := &Host{
		GalleryDir:   "/home/user/Videos",
		DownloadsDir: "/home/user/Downloads",
		TempDir:      "/tmp/vidtogallery",
		Clipboard:    cb,
		OnDelivered: func(s Strategy, location string) {
			delivered = append(delivered, s.String()+":"+location)
		},
	}
	return h, cb, &delivered
}

func TestHostCapabilities(t *testing.T) {
	Convey("Given a fully configured host", t, func() {
		h, cb, _ := newTestHost()

		So(h.Capabilities(), ShouldResemble, Capabilities{ShareFiles: true, ShareLink: true, Download: true})

		Convey("Disabling the gallery removes file sharing", func() {
			h.GalleryDir = ""
			So(h.Capabilities().ShareFiles, ShouldBeFalse)
			So(h.CanShareFiles(NewFile([]byte("x"), "a.mp4", "video/mp4")), ShouldBeFalse)
		})

		Convey("An unsupported clipboard removes link sharing", func() {
			cb.supported = false
			So(h.Capabilities().ShareLink, ShouldBeFalse)
		})

		Convey("Only media files can be shared", func() {
			So(h.CanShareFiles(NewFile([]byte("x"), "a.mp4", "video/mp4")), ShouldBeTrue)
			So(h.CanShareFiles(NewFile([]byte("x"), "a.txt", "text/plain")), ShouldBeFalse)
			So(h.CanShareFiles(), ShouldBeFalse)
		})
	})
}

func TestHostShareFiles(t *testing.T) {
	Convey("Given a host with a gallery", t, func() {
		h, _, delivered := newTestHost()
		var revealed string
		h.Reveal = true
		h.Opener = func(path string) error {
			revealed = path
			return nil
		}

		file := NewFile([]byte("media"), "My_Clip.mp4", "video/mp4")

		Convey("Sharing writes the file into the gallery", func() {
			So(h.ShareFiles(context.Background(), []*File{file}, "My Clip"), ShouldBeNil)

			data, err := filesystem.API().ReadFile(filepath.Join(h.GalleryDir, "My_Clip.mp4"))
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "media")
			So(revealed, ShouldEqual, h.GalleryDir)
			So(*delivered, ShouldResemble, []string{"gallery:" + filepath.Join(h.GalleryDir, "My_Clip.mp4")})

			Convey("And a second share keeps both copies", func() {
				So(h.ShareFiles(context.Background(), []*File{file}, "My Clip"), ShouldBeNil)
				exists, _ := filesystem.API().Exists(filepath.Join(h.GalleryDir, "My_Clip (1).mp4"))
				So(exists, ShouldBeTrue)
			})
		})

		Convey("Non-media files are refused", func() {
			err := h.ShareFiles(context.Background(), []*File{NewFile([]byte("x"), "a.txt", "text/plain")}, "")
			So(errors.Is(err, ErrUnsupported), ShouldBeTrue)
		})
	})
}

func TestHostShareLink(t *testing.T) {
	Convey("Given a host with a clipboard", t, func() {
		h, cb, delivered := newTestHost()

		Convey("The link lands in the clipboard", func() {
			So(h.ShareLink(context.Background(), "My Clip", "https://cdn/v1.mp4"), ShouldBeNil)
			So(cb.text, ShouldEqual, "https://cdn/v1.mp4")
			So(*delivered, ShouldResemble, []string{"link:https://cdn/v1.mp4"})
		})

		Convey("Clipboard failures are reported", func() {
			cb.err = errors.New("no display")
			So(h.ShareLink(context.Background(), "", "u"), ShouldNotBeNil)
		})

		Convey("An unsupported clipboard is reported", func() {
			cb.supported = false
			err := h.ShareLink(context.Background(), "", "u")
			So(errors.Is(err, ErrUnsupported), ShouldBeTrue)
		})
	})
}

func TestHostDownload(t *testing.T) {
	Convey("Given an exposed blob", t, func() {
		h, _, delivered := newTestHost()

		handle, err := h.Expose(&Blob{Data: []byte("bytes"), Type: "video/mp4"})
		So(err, ShouldBeNil)
		So(handle.URL(), ShouldStartWith, "file:///tmp/vidtogallery/")

		Convey("Triggering the download copies it into the downloads folder", func() {
			So(h.TriggerDownload(context.Background(), handle, "My_Clip.mp4"), ShouldBeNil)

			data, err := filesystem.API().ReadFile(filepath.Join(h.DownloadsDir, "My_Clip.mp4"))
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "bytes")
			So(*delivered, ShouldHaveLength, 1)
		})

		Convey("Releasing removes the temporary file once", func() {
			path := handle.(*tempHandle).path
			So(handle.Release(), ShouldBeNil)
			So(handle.Release(), ShouldBeNil)

			exists, _ := filesystem.API().Exists(path)
			So(exists, ShouldBeFalse)
		})

		Convey("Foreign handles are rejected", func() {
			So(h.TriggerDownload(context.Background(), foreignHandle{}, "x.mp4"), ShouldNotBeNil)
		})
	})
}

type foreignHandle struct{}

func (foreignHandle) URL() string    { return "blob:x" }
func (foreignHandle) Release() error { return nil }
