package api

import "time"

// QualityOption is one rendition of a source video offered by the backend.
type QualityOption struct {
	Identifier string `json:"quality" jsonschema:"description=Identifier passed back when downloading this rendition."`
	Label      string `json:"label" jsonschema:"description=Human readable label, e.g. 1080p."`
	Height     int    `json:"height,omitempty"`
	Width      int    `json:"width,omitempty"`
}

// String returns the label, or the identifier when the label is empty.
func (q QualityOption) String() string {
	if q.Label != "" {
		return q.Label
	}
	return q.Identifier
}

// Qualities is the backend answer to a qualities lookup.
type Qualities struct {
	Platform  string          `json:"platform"`
	Available []QualityOption `json:"available_qualities"`
}

// Provenance describes how the backend obtained the media.
type Provenance struct {
	Method     string `json:"method"`
	Source     string `json:"source"`
	ExternalID string `json:"tweet_id,omitempty" jsonschema:"description=Platform specific identifier of the post, when known."`
}

// MediaResult is a playable media URL plus metadata, produced by a download resolution.
type MediaResult struct {
	MediaURL        string     `json:"video_url"`
	Title           string     `json:"title,omitempty"`
	Platform        string     `json:"platform"`
	Quality         string     `json:"quality"`
	DurationSeconds int        `json:"duration,omitempty"`
	Provenance      Provenance `json:"metadata"`
	ProcessedAt     time.Time  `json:"processed_at"`
}

// Duration returns DurationSeconds as a time.Duration.
func (m MediaResult) Duration() time.Duration {
	return time.Duration(m.DurationSeconds) * time.Second
}

// Media is the raw payload streamed back by the proxy-download endpoint.
type Media struct {
	Data        []byte
	ContentType string
}

// Health is the backend liveness report.
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}

type qualitiesRequest struct {
	URL string `json:"url"`
}

type downloadRequest struct {
	URL     string `json:"url"`
	Quality string `json:"quality"`
}

type proxyRequest struct {
	VideoURL string `json:"video_url"`
}

// errorEnvelope is the JSON body the backend attaches to failed requests.
type errorEnvelope struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
