package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/vidtogallery/vidtogallery/api"
)

// Entry is a resolved download remembered between runs.
type Entry struct {
	SourceURL string          `json:"source_url"`
	Media     api.MediaResult `json:"media"`
	SavedAt   time.Time       `json:"saved_at"`
}

func (e *Entry) encode() string {
	return fmt.Sprintf("%s (%s)", e.SourceURL, e.Media.Quality)
}

// Title returns the media title, or the source URL when the backend reported none.
func (e *Entry) Title() string {
	if e.Media.Title != "" {
		return e.Media.Title
	}
	return e.SourceURL
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s [%s, %s]", e.Title(), e.Media.Platform, e.Media.Quality)
}

// haystack is the text searched by Search.
func (e *Entry) haystack() string {
	return strings.Join([]string{e.Media.Title, e.SourceURL, e.Media.Platform}, " ")
}
