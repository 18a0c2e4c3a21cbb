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

// trajAcc rows carry position in columns 0-2, velocity in columns 3-5 and
// the path age counter in column 33.
const (
	accMinColumns = 34
	accAgeColumn  = 33
)

// ReadAgeFrame reads one trajAcc frame file into an age-tagged row table.
func ReadAgeFrame(path string, frame int) ([]ptv.AgeRow, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ptv.MissingFileError{Frame: frame, Path: path, Cause: err}
		}
		return nil, fmt.Errorf("open frame file: %w", err)
	}
	defer f.Close()

	var rows []ptv.AgeRow
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < accMinColumns {
			return nil, &ptv.MalformedRowError{
				Path: path, Line: line, Columns: len(fields), Want: accMinColumns,
			}
		}

		var row ptv.AgeRow
		for c := 0; c < 3; c++ {
			if row.Pos[c], err = strconv.ParseFloat(fields[c], 64); err != nil {
				return nil, fmt.Errorf("%s:%d: parse position: %w", path, line, err)
			}
			if row.Vel[c], err = strconv.ParseFloat(fields[3+c], 64); err != nil {
				return nil, fmt.Errorf("%s:%d: parse velocity: %w", path, line, err)
			}
		}
		age, err := strconv.ParseFloat(fields[accAgeColumn], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: parse path age: %w", path, line, err)
		}
		row.Age = int(age)

		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read frame file: %w", err)
	}

	return rows, nil
}

// AccSource serves age-tagged frame tables from trajAcc files on disk,
// implementing ptv.FrameSource for the backward scanner.
type AccSource struct {
	tmpl *Template
}

// NewAccSource returns a frame source over trajAcc files named by the
// given template.
func NewAccSource(pattern string) (*AccSource, error) {
	tmpl, err := NewTemplate(pattern)
	if err != nil {
		return nil, err
	}
	return &AccSource{tmpl: tmpl}, nil
}

// Frame loads the raw table for one frame number.
func (s *AccSource) Frame(frame int) ([]ptv.AgeRow, error) {
	return ReadAgeFrame(s.tmpl.Path(frame), frame)
}

// TrajectoriesAcc extracts all trajectories from a directory of trajAcc
// files within the frame range [first, last). A last of zero leaves the
// range open-ended. Within one file, a row with age zero starts a
// trajectory and the following rows belong to it until the next age-zero
// row; sample times are the file's frame number plus the row's age.
func TrajectoriesAcc(pattern string, first, last int) ([]*ptv.Trajectory, error) {
	tmpl, err := NewTemplate(pattern)
	if err != nil {
		return nil, err
	}
	if last == 0 {
		last = math.MaxInt
	}

	nums, err := tmpl.Frames(first, last-1)
	if err != nil {
		return nil, err
	}

	var trajects []*ptv.Trajectory
	for _, num := range nums {
		rows, err := ReadAgeFrame(tmpl.Path(num), num)
		if err != nil {
			return nil, err
		}

		var current *ptv.Trajectory
		for _, row := range rows {
			if row.Age == 0 {
				current = &ptv.Trajectory{ID: int64(len(trajects))}
				trajects = append(trajects, current)
			}
			if current == nil {
				continue // rows before the first trajectory start
			}
			current.Samples = append(current.Samples, ptv.Sample{
				Pos:  row.Pos,
				Vel:  row.Vel,
				Time: num + row.Age,
			})
		}
	}

	return trajects, nil
}
