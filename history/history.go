// Package history remembers resolved downloads so they can be listed, searched and delivered again.
package history

import (
	"sort"
	"sync"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/vidtogallery/vidtogallery/api"
	"github.com/vidtogallery/vidtogallery/filesystem"
	"github.com/vidtogallery/vidtogallery/where"
)

var cacher = sync.OnceValue(func() *gache.Cache[map[string]*Entry] {
	return gache.New[map[string]*Entry](
		&gache.Options{
			Path:       where.History(),
			FileSystem: &filesystem.GacheFs{},
		},
	)
})

// now is replaced in tests.
var now = time.Now

// Get returns every entry keyed by source URL and quality.
func Get() (map[string]*Entry, error) {
	cached, expired, err := cacher().Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// Save records media resolved from sourceURL. Saving the same URL and quality again refreshes the entry.
func Save(sourceURL string, media api.MediaResult) (*Entry, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	entry := &Entry{
		SourceURL: sourceURL,
		Media:     media,
		SavedAt:   now(),
	}
	saved[entry.encode()] = entry

	return entry, cacher().Set(saved)
}

// List returns every entry, newest first.
func List() ([]*Entry, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	entries := lo.Values(saved)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SavedAt.After(entries[j].SavedAt)
	})
	return entries, nil
}

// Search returns the entries whose title, URL or platform fuzzily match query, newest first.
func Search(query string) ([]*Entry, error) {
	entries, err := List()
	if err != nil {
		return nil, err
	}

	return lo.Filter(entries, func(e *Entry, _ int) bool {
		return fuzzy.MatchNormalizedFold(query, e.haystack())
	}), nil
}

// Remove deletes a single entry.
func Remove(entry *Entry) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, entry.encode())
	return cacher().Set(saved)
}

// Clear deletes every entry.
func Clear() error {
	return cacher().Set(make(map[string]*Entry))
}

// Suggest returns distinct source URLs fuzzily matching partial, newest first.
func Suggest(partial string) []string {
	entries, err := List()
	if err != nil {
		return nil
	}

	urls := lo.Uniq(lo.Map(entries, func(e *Entry, _ int) string {
		return e.SourceURL
	}))
	return lo.Filter(urls, func(url string, _ int) bool {
		return fuzzy.MatchFold(partial, url)
	})
}
