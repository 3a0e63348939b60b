package version

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// release is a parsed "vMAJOR.MINOR.PATCH[-pre][+build]" tag.
type release struct {
	core       []int
	prerelease bool
}

func parseRelease(tag string) (release, error) {
	tag = strings.TrimPrefix(strings.TrimSpace(tag), "v")
	tag, _, _ = strings.Cut(tag, "+")
	tag, pre, hasPre := strings.Cut(tag, "-")

	parts := strings.Split(tag, ".")
	if len(parts) > 3 {
		return release{}, fmt.Errorf("version %q has too many components", tag)
	}

	core := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return release{}, fmt.Errorf("invalid version %q", tag)
		}
		core[i] = n
	}

	return release{core: core, prerelease: hasPre && pre != ""}, nil
}

// Compare orders two release tags: 1 if a is newer, -1 if b is newer, 0 otherwise.
// Missing minor or patch numbers count as zero and a pre-release sorts before its release.
func Compare(a, b string) (int, error) {
	ra, err := parseRelease(a)
	if err != nil {
		return 0, err
	}
	rb, err := parseRelease(b)
	if err != nil {
		return 0, err
	}

	if c := slices.Compare(ra.core, rb.core); c != 0 {
		return c, nil
	}
	switch {
	case ra.prerelease == rb.prerelease:
		return 0, nil
	case ra.prerelease:
		return -1, nil
	default:
		return 1, nil
	}
}
