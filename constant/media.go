package constant

// Media defaults applied to every file handed to a delivery channel.
const (
	MediaType       = "video/mp4"
	MediaExtension  = ".mp4"
	DefaultFilename = "video" + MediaExtension
)
