// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "vidtogallery"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is the HTTP User-Agent sent to the vidtogallery backend.
	UserAgent = App + "-cli/" + Version

	// Repository is the GitHub owner/name pair releases are published under.
	Repository = "vidtogallery/vidtogallery"
)

// Build metadata, overridden at link time via -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
