package frameio

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Template is a per-frame file name pattern containing exactly one %d where
// the frame number is inserted.
type Template struct {
	pattern string
}

// NewTemplate validates and returns a frame file template. A leading "~/"
// is expanded to the user's home directory.
func NewTemplate(pattern string) (*Template, error) {
	pattern = expandUser(pattern)
	if strings.Count(pattern, "%d") != 1 {
		return nil, fmt.Errorf("frame template must contain exactly one %%d, got %q", pattern)
	}
	return &Template{pattern: pattern}, nil
}

// Path returns the file name for a frame number.
func (t *Template) Path(frame int) string {
	return fmt.Sprintf(t.pattern, frame)
}

// Frames scans the template's directory and returns, in ascending order,
// the frame numbers of all files matching the template within the
// inclusive range [first, last].
func (t *Template) Frames(first, last int) ([]int, error) {
	dir, base := filepath.Split(t.pattern)
	if dir == "" {
		dir = "."
	}

	pre, post, _ := strings.Cut(base, "%d")
	re, err := regexp.Compile("^" + regexp.QuoteMeta(pre) + `(\d+)` + regexp.QuoteMeta(post) + "$")
	if err != nil {
		return nil, fmt.Errorf("compile frame pattern: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan frame directory: %w", err)
	}

	var frames []int
	for _, entry := range entries {
		m := re.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		frame, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if frame < first || frame > last {
			continue
		}
		frames = append(frames, frame)
	}

	sort.Ints(frames)
	return frames, nil
}

func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
