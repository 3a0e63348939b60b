package cmd

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidtogallery/vidtogallery/config"
	"github.com/vidtogallery/vidtogallery/key"
	"github.com/vidtogallery/vidtogallery/where"
)

func TestEnvVars(t *testing.T) {
	Convey("Given a delivery override in the environment", t, func() {
		env := map[string]string{"VIDTOGALLERY_DELIVERY_DEFAULT": "link"}
		vars := envVars(func(name string) (string, bool) {
			v, ok := env[name]
			return v, ok
		})

		Convey("Every setting and the config path are listed", func() {
			So(vars, ShouldHaveLength, len(config.EnvExposed)+1)
			_, ok := lo.Find(vars, func(v envVar) bool { return v.Name == where.EnvConfigPath })
			So(ok, ShouldBeTrue)
		})

		Convey("The override is reported against its key", func() {
			v, ok := lo.Find(vars, func(v envVar) bool { return v.Key == key.DeliveryDefault })
			So(ok, ShouldBeTrue)
			So(v.Name, ShouldEqual, "VIDTOGALLERY_DELIVERY_DEFAULT")
			So(v.Set, ShouldBeTrue)
			So(v.Value, ShouldEqual, "link")
		})

		Convey("Variables are sorted by name", func() {
			names := lo.Map(vars, func(v envVar, _ int) string { return v.Name })
			for i := 1; i < len(names); i++ {
				So(names[i-1] <= names[i], ShouldBeTrue)
			}
		})
	})
}
