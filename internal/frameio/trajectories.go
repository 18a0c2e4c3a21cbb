package frameio

import (
	"errors"

	"github.com/alexlib/postptv/internal/ptv"
)

// ErrMatUnsupported is returned when trajectory assembly is asked to decode
// a MATLAB archive. Decoding is delegated to an external decoder; pass the
// materialized list to the ptv trajectory-list APIs instead.
var ErrMatUnsupported = errors.New("mat trajectory archives require an external decoder")

// Trajectories extracts all trajectories from the files named by a
// template, routing to the format-specific extraction. An empty format is
// inferred from the template name; a last of zero leaves the frame range
// open-ended. Trajectories of a single frame carry no velocity information
// and are filtered out as noise.
func Trajectories(pattern string, first, last int, frameRate float64, format Format) ([]*ptv.Trajectory, error) {
	if format == "" {
		var err error
		if format, err = InferFormat(pattern); err != nil {
			return nil, err
		}
	}

	var (
		trajects []*ptv.Trajectory
		err      error
	)
	switch format {
	case FormatPTVIS, FormatXUAP:
		trajects, err = TrajectoriesPTVIS(pattern, first, last, frameRate, format)
	case FormatAcc:
		trajects, err = TrajectoriesAcc(pattern, first, last)
	case FormatMat:
		return nil, ErrMatUnsupported
	default:
		return nil, &ptv.FormatInferenceError{Template: pattern}
	}
	if err != nil {
		return nil, err
	}

	kept := make([]*ptv.Trajectory, 0, len(trajects))
	for _, tr := range trajects {
		if tr.Len() > 1 {
			kept = append(kept, tr)
		}
	}
	return kept, nil
}
