package ui

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidtogallery/vidtogallery/key"
)

func TestToaster(t *testing.T) {
	Convey("Given a toaster writing to a buffer", t, func() {
		viper.Set(key.IconsVariant, "plain")
		viper.Set(key.ToastAnimate, true)
		var out bytes.Buffer
		toaster := NewToaster(&out)

		Convey("It never animates outside a terminal", func() {
			So(toaster.animate, ShouldBeFalse)
		})

		Convey("A loading toast is erased once dismissed", func() {
			toast := toaster.ShowLoading("Checking qualities...")
			So(out.String(), ShouldContainSubstring, "Checking qualities...")

			toast.Dismiss()
			written := out.Len()
			toast.Dismiss()

			So(out.Len(), ShouldEqual, written)
			So(out.String(), ShouldEndWith, "\r")
		})

		Convey("Outcomes are printed on their own line", func() {
			toaster.ShowSuccess("Found 2 qualities on twitter")
			toaster.ShowFailure("quota exceeded")

			So(out.String(), ShouldContainSubstring, "Found 2 qualities on twitter")
			So(out.String(), ShouldContainSubstring, "quota exceeded")
			So(out.String(), ShouldEndWith, "\n")
		})

		Convey("Long messages wrap to the width", func() {
			toaster.width = 30
			toaster.ShowFailure("the backend could not reach the platform in time")
			So(bytes.Count(out.Bytes(), []byte("\n")), ShouldBeGreaterThan, 1)
		})
	})
}

func TestLoadingModel(t *testing.T) {
	Convey("The loading model clears its line on dismiss", t, func() {
		m := newLoadingModel("Downloading...")
		So(m.View(), ShouldContainSubstring, "Downloading...")

		next, cmd := m.Update(dismissMsg{})
		So(cmd, ShouldNotBeNil)
		So(next.View(), ShouldBeEmpty)
	})
}
