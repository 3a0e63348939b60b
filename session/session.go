// Package session holds the state of one video acquisition and the controller that advances it:
// qualities lookup, download resolution and delivery of the media to the user.
package session

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vidtogallery/vidtogallery/api"
	"golang.org/x/exp/slices"
)

// Phase is the stage of the current acquisition.
type Phase int

const (
	Idle Phase = iota
	ResolvingQualities
	QualitiesReady
	Downloading
	DownloadReady
	Error
)

var phaseNames = map[Phase]string{
	Idle:               "idle",
	ResolvingQualities: "resolving qualities",
	QualitiesReady:     "qualities ready",
	Downloading:        "downloading",
	DownloadReady:      "download ready",
	Error:              "error",
}

func (p Phase) String() string {
	return phaseNames[p]
}

// Session is the client-observable state of one acquisition flow.
// The zero value is the idle session.
type Session struct {
	SourceURL       string
	Platform        string
	Phase           Phase
	Qualities       []api.QualityOption
	SelectedQuality string
	Resolved        mo.Option[api.MediaResult]
	LastError       string
}

// IsLoading reports whether a qualities lookup or a download is in flight.
func (s Session) IsLoading() bool {
	return s.Phase == ResolvingQualities || s.Phase == Downloading
}

// Media returns the resolved media, if any.
func (s Session) Media() (api.MediaResult, bool) {
	return s.Resolved.Get()
}

// Quality returns the selected quality option.
func (s Session) Quality() (api.QualityOption, bool) {
	return lo.Find(s.Qualities, func(q api.QualityOption) bool {
		return q.Identifier == s.SelectedQuality
	})
}

// settled is the phase a session rests in when nothing is in flight and nothing failed.
func (s Session) settled() Phase {
	switch {
	case s.Resolved.IsPresent():
		return DownloadReady
	case len(s.Qualities) > 0:
		return QualitiesReady
	default:
		return Idle
	}
}

func (s Session) clone() Session {
	s.Qualities = slices.Clone(s.Qualities)
	return s
}
