// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Backend API - these keys locate and tune the connection to the vidtogallery backend.
const (
	APIBaseURL        = "api.base_url"
	APITimeout        = "api.timeout"
	APITLSFingerprint = "api.tls_fingerprint"
)

// Delivery - these keys select how resolved media reaches the user.
const (
	DeliveryDefault = "delivery.default"
)

// Gallery - these keys configure the share-with-files capability of the host.
const (
	GalleryEnable = "gallery.enable"
	GalleryDir    = "gallery.dir"
	GalleryReveal = "gallery.reveal"
)

// Downloads - these keys configure the forced-download capability of the host.
const (
	DownloadsDir = "downloads.dir"
)

// Quality Selection - these keys influence which rendition is preselected after resolution.
const (
	QualityDefault = "quality.default"
)

// History Tracking - these keys configure the persistence of resolved downloads.
const (
	HistorySave = "history.save"
)

// Notifications - these keys govern terminal toast rendering.
const (
	ToastAnimate = "toast.animate"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
