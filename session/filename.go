package session

import (
	"regexp"
	"strings"

	"github.com/vidtogallery/vidtogallery/constant"
)

var (
	unsafeChars = regexp.MustCompile(`[^\w\s-]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Filename derives the name media is saved under from its title.
// "My Clip" becomes "My_Clip.mp4"; a title with nothing usable becomes "video.mp4".
func Filename(title string) string {
	name := unsafeChars.ReplaceAllString(strings.TrimSpace(title), "")
	name = whitespace.ReplaceAllString(name, "_")
	if name == "" {
		return constant.DefaultFilename
	}
	return name + constant.MediaExtension
}
