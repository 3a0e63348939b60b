package config

import (
	"testing"

	"github.com/vidtogallery/vidtogallery/filesystem"
	"github.com/vidtogallery/vidtogallery/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.APIBaseURL), ShouldEqual, "http://localhost:8080")
			So(viper.GetString(key.DeliveryDefault), ShouldEqual, "auto")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("api.base_url")
			So(result, ShouldEqual, "api_base_url")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.APITimeout]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "VIDTOGALLERY_API_TIMEOUT")
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.APITimeout)
		})
	})
}
