package delivery

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSelect(t *testing.T) {
	Convey("Select", t, func() {
		everything := Capabilities{ShareFiles: true, ShareLink: true, Download: true}

		Convey("Auto prefers the gallery", func() {
			s, err := Select(everything, Auto)
			So(err, ShouldBeNil)
			So(s, ShouldEqual, Gallery)
		})

		Convey("Auto falls back to a file download without file sharing", func() {
			s, err := Select(Capabilities{ShareLink: true, Download: true}, Auto)
			So(err, ShouldBeNil)
			So(s, ShouldEqual, Download)
		})

		Convey("Auto settles for the link as a last resort", func() {
			s, err := Select(Capabilities{ShareLink: true}, Auto)
			So(err, ShouldBeNil)
			So(s, ShouldEqual, Link)
		})

		Convey("Auto fails on a host without capabilities", func() {
			_, err := Select(Capabilities{}, Auto)
			So(errors.Is(err, ErrUnsupported), ShouldBeTrue)
		})

		Convey("An explicit strategy is kept when supported", func() {
			s, err := Select(everything, Link)
			So(err, ShouldBeNil)
			So(s, ShouldEqual, Link)
		})

		Convey("An explicit strategy is never swapped for another", func() {
			_, err := Select(Capabilities{Download: true}, Gallery)
			So(errors.Is(err, ErrUnsupported), ShouldBeTrue)
			So(err.Error(), ShouldStartWith, "gallery")
		})
	})
}

func TestParseStrategy(t *testing.T) {
	Convey("ParseStrategy", t, func() {
		for _, name := range StrategyNames() {
			s, err := ParseStrategy(name)
			So(err, ShouldBeNil)
			So(s.String(), ShouldEqual, name)
		}

		s, err := ParseStrategy(" File ")
		So(err, ShouldBeNil)
		So(s, ShouldEqual, Download)

		_, err = ParseStrategy("carrier pigeon")
		So(err, ShouldNotBeNil)
	})
}

func TestAvailable(t *testing.T) {
	Convey("Available keeps preference order", t, func() {
		caps := Capabilities{ShareLink: true, ShareFiles: true}
		So(caps.Available(), ShouldResemble, []Strategy{Gallery, Link})
		So(Capabilities{}.Available(), ShouldBeEmpty)
	})
}
