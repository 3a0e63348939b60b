package version

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidtogallery/vidtogallery/constant"
	"github.com/vidtogallery/vidtogallery/filesystem"
	"github.com/vidtogallery/vidtogallery/key"
)

func TestCompare(t *testing.T) {
	Convey("Compare orders semantic versions", t, func() {
		for _, tc := range []struct {
			a, b string
			want int
		}{
			{"1.0.0", "1.0.0", 0},
			{"v1.2.0", "1.1.9", 1},
			{"0.3.1", "0.10.0", -1},
			{"v2", "1.9.9", 1},
			{"1.2", "1.2.0", 0},
			{"1.0.0-rc1", "1.0.0", -1},
			{"1.0.0+build.5", "v1.0.0", 0},
		} {
			got, err := Compare(tc.a, tc.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, tc.want)
		}

		_, err := Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)

		_, err = Compare("1.0.0", "1.2.3.4")
		So(err, ShouldNotBeNil)
	})
}

func TestNotify(t *testing.T) {
	Convey("Given a release feed announcing a newer version", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.CliVersionCheck, true)
		viper.Set(key.IconsVariant, "plain")

		var agent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agent = r.Header.Get("User-Agent")
			fmt.Fprint(w, `{"tag_name": "v99.0.0"}`)
		}))
		defer server.Close()

		previous := releaseURL
		releaseURL = server.URL
		defer func() { releaseURL = previous }()
		So(versionCacher.Set(""), ShouldBeNil)

		var out bytes.Buffer
		Notify(context.Background(), &out)

		So(agent, ShouldEqual, constant.UserAgent)
		So(out.String(), ShouldContainSubstring, "99.0.0")
		So(out.String(), ShouldContainSubstring, "releases/tag/v99.0.0")

		Convey("And the answer is cached", func() {
			latest, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(latest, ShouldEqual, "99.0.0")
		})
	})

	Convey("Nothing is printed when the check is disabled", t, func() {
		viper.Set(key.CliVersionCheck, false)
		var out bytes.Buffer
		Notify(context.Background(), &out)
		So(out.String(), ShouldBeEmpty)
	})
}
