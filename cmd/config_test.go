package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidtogallery/vidtogallery/key"
)

func TestParseSetting(t *testing.T) {
	Convey("parseSetting", t, func() {
		Convey("Converts to the type of the default", func() {
			v, err := parseSetting(key.APITimeout, []string{"30"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 30)

			v, err = parseSetting(key.GalleryReveal, []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			v, err = parseSetting(key.QualityDefault, []string{"hd"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "hd")
		})

		Convey("Accepts every delivery method and none", func() {
			for _, name := range deliveryChoices() {
				_, err := parseSetting(key.DeliveryDefault, []string{name})
				So(err, ShouldBeNil)
			}
		})

		Convey("Rejects an unknown delivery method", func() {
			_, err := parseSetting(key.DeliveryDefault, []string{"fax"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.DeliveryDefault)
		})

		Convey("Rejects values that do not fit the key", func() {
			for _, tc := range []struct {
				name string
				raw  []string
			}{
				{key.APITimeout, []string{"soon"}},
				{key.APITimeout, []string{"0"}},
				{key.GalleryReveal, []string{"maybe"}},
				{key.APIBaseURL, []string{"localhost:8080"}},
				{key.APIBaseURL, []string{"ftp://example.com"}},
				{key.IconsVariant, []string{"ascii-art"}},
				{key.LogsLevel, []string{"loud"}},
				{key.QualityDefault, nil},
			} {
				_, err := parseSetting(tc.name, tc.raw)
				So(err, ShouldNotBeNil)
			}
		})

		Convey("Accepts a backend URL", func() {
			v, err := parseSetting(key.APIBaseURL, []string{"https://api.example.com"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "https://api.example.com")
		})

		Convey("Suggests the closest key", func() {
			_, err := parseSetting("delivery.defualt", []string{"gallery"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.DeliveryDefault)
		})
	})
}
