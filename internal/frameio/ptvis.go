package frameio

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/alexlib/postptv/internal/ptv"
)

// Column contracts for the link-based formats. ptv_is rows carry a link
// pair and a millimeter position behind a count header; xuap rows add
// interpolated position, velocity and acceleration triples and use meters.
const (
	ptvisMinColumns = 5
	xuapMinColumns  = 14

	ptvisLinkBase = 0
	xuapLinkBase  = 1
)

// ReadLinkFrame reads one link-based frame file into a LinkFrame table.
// ptv_is positions are converted from millimeters to meters here; xuap rows
// pass through unconverted.
func ReadLinkFrame(path string, frame int, format Format) (ptv.LinkFrame, error) {
	out := ptv.LinkFrame{Frame: frame}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, &ptv.MissingFileError{Frame: frame, Path: path, Cause: err}
		}
		return out, fmt.Errorf("open frame file: %w", err)
	}
	defer f.Close()

	minCols := xuapMinColumns
	skipHeader := false
	if format == FormatPTVIS {
		minCols = ptvisMinColumns
		skipHeader = true
	}

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		if skipHeader && line == 1 {
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < minCols {
			return out, &ptv.MalformedRowError{
				Path: path, Line: line, Columns: len(fields), Want: minCols,
			}
		}

		prev, err := strconv.Atoi(fields[0])
		if err != nil {
			return out, fmt.Errorf("%s:%d: parse prev link: %w", path, line, err)
		}

		var row ptv.LinkRow
		row.Prev = prev
		for c := 0; c < 3; c++ {
			v, err := strconv.ParseFloat(fields[2+c], 64)
			if err != nil {
				return out, fmt.Errorf("%s:%d: parse position: %w", path, line, err)
			}
			row.Pos[c] = v
		}
		if format == FormatPTVIS {
			for c := 0; c < 3; c++ {
				row.Pos[c] /= 1000.0 // mm to m
			}
		} else {
			for c := 0; c < 3; c++ {
				v, err := strconv.ParseFloat(fields[8+c], 64)
				if err != nil {
					return out, fmt.Errorf("%s:%d: parse velocity: %w", path, line, err)
				}
				row.Vel[c] = v
			}
		}

		out.Rows = append(out.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return out, fmt.Errorf("read frame file: %w", err)
	}

	return out, nil
}

// TrajectoriesPTVIS extracts all trajectories from a directory of ptv_is or
// xuap files within the inclusive frame range [first, last]. A last of zero
// leaves the range open-ended. Callers that need path segments at frame
// last should pass last+1, since the final frame contributes no segments.
func TrajectoriesPTVIS(pattern string, first, last int, frameRate float64, format Format) ([]*ptv.Trajectory, error) {
	tmpl, err := NewTemplate(pattern)
	if err != nil {
		return nil, err
	}
	if last == 0 {
		last = math.MaxInt
	}

	nums, err := tmpl.Frames(first, last)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, &ptv.MissingFileError{Frame: first, Path: tmpl.Path(first)}
	}

	frames := make([]ptv.LinkFrame, 0, len(nums))
	for _, num := range nums {
		frame, err := ReadLinkFrame(tmpl.Path(num), num, format)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	cfg := ptv.LinkerConfig{
		FrameRate:   frameRate,
		LinkBase:    ptvisLinkBase,
		HasVelocity: false,
	}
	if format == FormatXUAP {
		cfg.LinkBase = xuapLinkBase
		cfg.HasVelocity = true
	}

	return ptv.LinkTrajectories(frames, cfg)
}
