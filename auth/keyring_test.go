package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func TestToken(t *testing.T) {
	Convey("Given an in-memory keyring", t, func() {
		keyring.MockInit()

		Convey("A missing token reads as empty", func() {
			token, err := GetToken()
			So(err, ShouldBeNil)
			So(token, ShouldBeEmpty)
			So(DeleteToken(), ShouldBeNil)
		})

		Convey("A stored token can be read back and deleted", func() {
			So(SetToken("s3cr3t"), ShouldBeNil)

			token, err := GetToken()
			So(err, ShouldBeNil)
			So(token, ShouldEqual, "s3cr3t")

			So(DeleteToken(), ShouldBeNil)
			token, _ = GetToken()
			So(token, ShouldBeEmpty)
		})
	})
}
