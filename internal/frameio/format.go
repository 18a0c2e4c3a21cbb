// Package frameio decodes raw per-frame particle detection files into the
// row tables consumed by the ptv package, and assembles trajectories from
// directories of such files. Column layout, link index base and unit scale
// are fixed per format.
package frameio

import (
	"path/filepath"
	"strings"

	"github.com/alexlib/postptv/internal/ptv"
)

// Format identifies a raw particle data convention.
type Format string

const (
	// FormatPTVIS is the ptv_is text convention: one header count line,
	// rows of "prev next x y z" with zero-based links and millimeter
	// positions.
	FormatPTVIS Format = "ptvis"

	// FormatXUAP is the extended ptv_is convention: no header, one-based
	// links, meter positions, and explicit velocity and acceleration
	// columns.
	FormatXUAP Format = "xuap"

	// FormatAcc is the trajAcc convention: age-tagged rows with position,
	// velocity and a frames-since-start counter in column 33.
	FormatAcc Format = "acc"

	// FormatMat marks MATLAB trajectory archives. Decoding them is
	// delegated to an external decoder; materialized trajectory lists
	// enter through the ptv trajectory-list APIs.
	FormatMat Format = "mat"
)

// InferFormat guesses the raw data format from a file name template.
func InferFormat(pattern string) (Format, error) {
	base := filepath.Base(pattern)
	switch {
	case strings.HasSuffix(base, ".mat"):
		return FormatMat, nil
	case strings.Contains(base, "ptv_is"):
		return FormatPTVIS, nil
	case strings.Contains(base, "xuap"):
		return FormatXUAP, nil
	case strings.Contains(strings.ToLower(base), "acc"):
		return FormatAcc, nil
	}
	return "", &ptv.FormatInferenceError{Template: pattern}
}
