package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vidtogallery/vidtogallery/api"
	"github.com/vidtogallery/vidtogallery/icon"
	"github.com/vidtogallery/vidtogallery/style"
)

func qualityLabel(q api.QualityOption) string {
	if q.Width > 0 && q.Height > 0 {
		return fmt.Sprintf("%s (%dx%d)", q, q.Width, q.Height)
	}
	return q.String()
}

func qualityNames(qualities []api.QualityOption) string {
	names := make([]string, len(qualities))
	for i, q := range qualities {
		names[i] = q.Identifier
	}
	return strings.Join(names, ", ")
}

// printMedia shows what the backend resolved.
func printMedia(w io.Writer, media api.MediaResult) {
	title := media.Title
	if title == "" {
		title = "Untitled video"
	}

	var details []string
	if media.Platform != "" {
		details = append(details, media.Platform)
	}
	if media.Quality != "" {
		details = append(details, style.Quality(media.Quality))
	}
	if media.DurationSeconds > 0 {
		details = append(details, media.Duration().String())
	}

	fmt.Fprintf(w, "%s %s %s\n", icon.Get(icon.Video), style.Bold(title), style.Faint(strings.Join(details, " · ")))
	fmt.Fprintf(w, "  %s\n", style.Link(media.MediaURL))
	if !media.ProcessedAt.IsZero() {
		fmt.Fprintf(w, "  %s\n", style.Faint("processed "+media.ProcessedAt.Local().Format(time.DateTime)))
	}
}
