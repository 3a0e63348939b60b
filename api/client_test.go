package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type recorded struct {
	method string
	path   string
	header http.Header
	body   map[string]string
}

func newBackend(handler func(w http.ResponseWriter, r *http.Request)) (*httptest.Server, *[]recorded) {
	var calls []recorded
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := recorded{method: r.Method, path: r.URL.Path, header: r.Header.Clone()}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &call.body)
		}
		calls = append(calls, call)
		handler(w, r)
	}))
	return server, &calls
}

func TestQualities(t *testing.T) {
	Convey("Given a backend listing two qualities", t, func() {
		server, calls := newBackend(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"platform":"twitter","available_qualities":[` +
				`{"quality":"hd","label":"1080p","height":1080,"width":1920},` +
				`{"quality":"sd","label":"480p","height":480,"width":854}]}`))
		})
		defer server.Close()

		client := New(server.URL+"/", server.Client(), WithToken("secret"))

		Convey("Qualities decodes them in order", func() {
			qualities, err := client.Qualities(context.Background(), "https://x.com/video1")
			So(err, ShouldBeNil)
			So(qualities.Platform, ShouldEqual, "twitter")
			So(qualities.Available, ShouldHaveLength, 2)
			So(qualities.Available[0], ShouldResemble, QualityOption{Identifier: "hd", Label: "1080p", Height: 1080, Width: 1920})
			So(qualities.Available[1].Identifier, ShouldEqual, "sd")

			Convey("And posts the source URL with the standard headers", func() {
				So(*calls, ShouldHaveLength, 1)
				call := (*calls)[0]
				So(call.method, ShouldEqual, http.MethodPost)
				So(call.path, ShouldEqual, "/api/v1/qualities")
				So(call.body["url"], ShouldEqual, "https://x.com/video1")
				So(call.header.Get("Content-Type"), ShouldEqual, "application/json")
				So(call.header.Get("Authorization"), ShouldEqual, "Bearer secret")
				So(call.header.Get("X-Request-ID"), ShouldNotBeEmpty)
			})
		})
	})
}

func TestDownload(t *testing.T) {
	Convey("Given a backend resolving a download", t, func() {
		server, calls := newBackend(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"video_url":"https://cdn/v1.mp4","title":"My Clip","platform":"twitter",` +
				`"quality":"hd","duration":42,"metadata":{"method":"api","source":"twitter","tweet_id":"123"},` +
				`"processed_at":"2026-10-19T10:00:00Z"}`))
		})
		defer server.Close()

		result, err := New(server.URL, server.Client()).Download(context.Background(), "https://x.com/video1", "hd")

		So(err, ShouldBeNil)
		So(result.MediaURL, ShouldEqual, "https://cdn/v1.mp4")
		So(result.Title, ShouldEqual, "My Clip")
		So(result.DurationSeconds, ShouldEqual, 42)
		So(result.Provenance.ExternalID, ShouldEqual, "123")
		So(result.ProcessedAt.Year(), ShouldEqual, 2026)
		So((*calls)[0].path, ShouldEqual, "/api/v1/download")
		So((*calls)[0].body["quality"], ShouldEqual, "hd")
	})
}

func TestFailures(t *testing.T) {
	Convey("Given a failing backend", t, func() {
		var status int
		var body string
		server, _ := newBackend(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		})
		defer server.Close()
		client := New(server.URL, server.Client())

		Convey("A plain text body becomes the message", func() {
			status, body = http.StatusInternalServerError, "quota exceeded\n"
			_, err := client.Download(context.Background(), "u", "hd")

			var apiErr *Error
			So(errors.As(err, &apiErr), ShouldBeTrue)
			So(apiErr.Status, ShouldEqual, 500)
			So(err.Error(), ShouldEqual, "quota exceeded")
		})

		Convey("The JSON envelope is flattened", func() {
			status, body = http.StatusInternalServerError, `{"error":"Failed to get available qualities","code":"QUALITIES_ERROR","details":"unsupported platform"}`
			_, err := client.Qualities(context.Background(), "u")
			So(err.Error(), ShouldEqual, "Failed to get available qualities: unsupported platform")
		})

		Convey("An empty body falls back to the generic message", func() {
			status, body = http.StatusBadGateway, ""
			_, err := client.Qualities(context.Background(), "u")
			So(err.Error(), ShouldEqual, "HTTP 502: Error getting video qualities")
		})

		Convey("A malformed success body is reported", func() {
			status, body = http.StatusOK, "not json"
			_, err := client.Qualities(context.Background(), "u")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldStartWith, "Error getting video qualities: invalid response")
		})
	})

	Convey("Given an unreachable backend", t, func() {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, err := New(url, http.DefaultClient).Download(context.Background(), "u", "hd")

		var apiErr *Error
		So(errors.As(err, &apiErr), ShouldBeTrue)
		So(apiErr.Status, ShouldEqual, 0)
		So(apiErr.Unwrap(), ShouldNotBeNil)
		So(err.Error(), ShouldStartWith, "Error downloading video: ")
	})
}

func TestProxyDownload(t *testing.T) {
	Convey("ProxyDownload", t, func() {
		var contentType string
		server, calls := newBackend(func(w http.ResponseWriter, r *http.Request) {
			if contentType != "" {
				w.Header().Set("Content-Type", contentType)
			}
			_, _ = w.Write([]byte("%PDF-1.4 fake media"))
		})
		defer server.Close()
		client := New(server.URL, server.Client())

		Convey("Keeps a declared content type", func() {
			contentType = "video/mp4"
			media, err := client.ProxyDownload(context.Background(), "https://cdn/v1.mp4")
			So(err, ShouldBeNil)
			So(media.ContentType, ShouldEqual, "video/mp4")
			So(string(media.Data), ShouldEqual, "%PDF-1.4 fake media")
			So((*calls)[0].path, ShouldEqual, "/api/v1/proxy-download")
			So((*calls)[0].body["video_url"], ShouldEqual, "https://cdn/v1.mp4")
		})

		Convey("Sniffs an opaque payload", func() {
			contentType = "application/octet-stream"
			media, err := client.ProxyDownload(context.Background(), "https://cdn/v1.mp4")
			So(err, ShouldBeNil)
			So(media.ContentType, ShouldEqual, "application/pdf")
		})

		Convey("Drops media type parameters", func() {
			contentType = "video/mp4; codecs=avc1"
			media, err := client.ProxyDownload(context.Background(), "https://cdn/v1.mp4")
			So(err, ShouldBeNil)
			So(media.ContentType, ShouldEqual, "video/mp4")
		})
	})
}

func TestHealth(t *testing.T) {
	Convey("Health", t, func() {
		server, calls := newBackend(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"ok","timestamp":"2026-10-19T10:00:00Z","service":"vidtogallery"}`))
		})
		defer server.Close()

		health, err := New(server.URL, server.Client()).Health(context.Background())
		So(err, ShouldBeNil)
		So(health.Status, ShouldEqual, "ok")
		So(health.Service, ShouldEqual, "vidtogallery")
		So((*calls)[0].method, ShouldEqual, http.MethodGet)
		So((*calls)[0].header.Get("Content-Type"), ShouldBeEmpty)
	})
}
