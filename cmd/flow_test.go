package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidtogallery/vidtogallery/api"
	"github.com/vidtogallery/vidtogallery/delivery"
	"github.com/vidtogallery/vidtogallery/key"
)

func TestParseDelivery(t *testing.T) {
	Convey("parseDelivery", t, func() {
		s, err := parseDelivery("gallery")
		So(err, ShouldBeNil)
		So(*s, ShouldEqual, delivery.Gallery)

		s, err = parseDelivery("None")
		So(err, ShouldBeNil)
		So(s, ShouldBeNil)

		_, err = parseDelivery("fax")
		So(err, ShouldNotBeNil)
	})
}

func TestChooseDelivery(t *testing.T) {
	Convey("Given a configured default", t, func() {
		viper.Set(key.DeliveryDefault, "file")
		defer viper.Set(key.DeliveryDefault, "auto")

		Convey("The flag wins over the configuration", func() {
			s, err := chooseDelivery(delivery.Capabilities{}, "link")
			So(err, ShouldBeNil)
			So(*s, ShouldEqual, delivery.Link)
		})

		Convey("The configuration is used without prompting", func() {
			s, err := chooseDelivery(delivery.Capabilities{}, "")
			So(err, ShouldBeNil)
			So(*s, ShouldEqual, delivery.Download)
		})
	})

	Convey("A host without capabilities skips delivery", t, func() {
		viper.Set(key.DeliveryDefault, "auto")
		s, err := chooseDelivery(delivery.Capabilities{}, "")
		So(err, ShouldBeNil)
		So(s, ShouldBeNil)
	})
}

func TestFindQuality(t *testing.T) {
	Convey("Qualities match by identifier or label", t, func() {
		qualities := []api.QualityOption{
			{Identifier: "hd", Label: "1080p", Width: 1920, Height: 1080},
			{Identifier: "sd", Label: "480p"},
		}

		q, ok := findQuality(qualities, "1080p")
		So(ok, ShouldBeTrue)
		So(q.Identifier, ShouldEqual, "hd")

		_, ok = findQuality(qualities, "4k")
		So(ok, ShouldBeFalse)

		So(qualityLabel(qualities[0]), ShouldEqual, "1080p (1920x1080)")
		So(qualityLabel(qualities[1]), ShouldEqual, "480p")
		So(qualityNames(qualities), ShouldEqual, "hd, sd")
	})
}
