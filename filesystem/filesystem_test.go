package filesystem

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestUniquePath(t *testing.T) {
	Convey("Given an in-memory directory", t, func() {
		SetMemMapFs()
		dir := "/videos"
		So(API().MkdirAll(dir, 0o755), ShouldBeNil)

		Convey("A free name is returned as is", func() {
			path, err := UniquePath(dir, "My_Clip.mp4")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, filepath.Join(dir, "My_Clip.mp4"))
		})

		Convey("Taken names get a numbered suffix", func() {
			So(API().WriteFile(filepath.Join(dir, "My_Clip.mp4"), []byte("a"), 0o644), ShouldBeNil)
			So(API().WriteFile(filepath.Join(dir, "My_Clip (1).mp4"), []byte("b"), 0o644), ShouldBeNil)

			path, err := UniquePath(dir, "My_Clip.mp4")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, filepath.Join(dir, "My_Clip (2).mp4"))
		})
	})
}
