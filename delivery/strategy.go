package delivery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrUnsupported is returned when the host lacks the requested delivery mechanism.
var ErrUnsupported = errors.New("delivery method not supported on this device")

// Strategy is one of the mutually exclusive delivery mechanisms.
type Strategy int

const (
	// Auto lets Select pick the best mechanism the host supports.
	Auto Strategy = iota
	// Gallery shares the media file natively (saved to the gallery).
	Gallery
	// Download forces a file download into the user's downloads location.
	Download
	// Link shares the media URL.
	Link
)

var strategyNames = map[Strategy]string{
	Auto:     "auto",
	Gallery:  "gallery",
	Download: "file",
	Link:     "link",
}

// String returns the configuration name of s.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy converts a configuration name into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for strategy, n := range strategyNames {
		if n == name {
			return strategy, nil
		}
	}
	return Auto, fmt.Errorf("unknown delivery method %q, expected one of %s", name, strings.Join(StrategyNames(), ", "))
}

// StrategyNames lists the accepted configuration names.
func StrategyNames() []string {
	return []string{Auto.String(), Gallery.String(), Download.String(), Link.String()}
}

// Supports reports whether caps allows s. Auto is supported when anything is.
func (c Capabilities) Supports(s Strategy) bool {
	switch s {
	case Gallery:
		return c.ShareFiles
	case Download:
		return c.Download
	case Link:
		return c.ShareLink
	case Auto:
		return c.ShareFiles || c.Download || c.ShareLink
	default:
		return false
	}
}

// Available lists the concrete strategies caps allows, in order of preference.
func (c Capabilities) Available() []Strategy {
	return lo.Filter([]Strategy{Gallery, Download, Link}, func(s Strategy, _ int) bool {
		return c.Supports(s)
	})
}

// Select resolves preferred against caps into a single concrete strategy.
// Auto picks the first available of gallery, file, link.
func Select(caps Capabilities, preferred Strategy) (Strategy, error) {
	if preferred != Auto {
		if !caps.Supports(preferred) {
			return preferred, fmt.Errorf("%s: %w", preferred, ErrUnsupported)
		}
		return preferred, nil
	}

	available := caps.Available()
	if len(available) == 0 {
		return Auto, ErrUnsupported
	}
	return available[0], nil
}
