// Command traj-report renders a self-contained HTML report of a
// reconstruction run: particle positions at a target frame coloured by
// speed, and the number of live particles per frame.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/alexlib/postptv/internal/frameio"
	"github.com/alexlib/postptv/internal/ptv"
)

func main() {
	var (
		pattern string
		format  string
		first   int
		last    int
		frate   float64
		frame   int
		out     string
	)

	flag.StringVar(&pattern, "data", "", "frame file template with one %d for the frame number")
	flag.StringVar(&format, "format", "", "raw data format: ptvis, xuap or acc (default: infer)")
	flag.IntVar(&first, "first", 0, "first frame to read")
	flag.IntVar(&last, "last", 0, "last frame to read (0 reads to the end)")
	flag.Float64Var(&frate, "frate", 1.0, "frame rate for velocity estimation")
	flag.IntVar(&frame, "frame", -1, "target frame for the position scatter (default: first sampled frame)")
	flag.StringVar(&out, "out", "trajectories.html", "output HTML path")
	flag.Parse()

	if pattern == "" {
		log.Fatalf("-data must be provided")
	}

	trajects, err := frameio.Trajectories(pattern, first, last, frate, frameio.Format(format))
	if err != nil {
		log.Fatalf("reconstruct trajectories: %v", err)
	}
	if len(trajects) == 0 {
		log.Fatalf("no trajectories of length > 1 found in %s", pattern)
	}

	if frame < 0 {
		frame = trajects[0].StartFrame()
		for _, tr := range trajects {
			if tr.StartFrame() < frame {
				frame = tr.StartFrame()
			}
		}
	}

	page := components.NewPage()
	page.AddCharts(positionScatter(trajects, frame), occupancyLine(trajects))

	f, err := os.Create(out)
	if err != nil {
		log.Fatalf("create report file: %v", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		log.Fatalf("render report: %v", err)
	}
	log.Printf("wrote report for %d trajectories to %s", len(trajects), out)
}

// positionScatter plots every particle alive at the target frame, coloured
// by speed magnitude.
func positionScatter(trajects []*ptv.Trajectory, frame int) *charts.Scatter {
	states := ptv.CollectFromTrajectories(trajects, frame)

	data := make([]opts.ScatterData, 0, len(states))
	maxSpeed := 0.0
	for _, s := range states {
		speed := math.Sqrt(s.Vel[0]*s.Vel[0] + s.Vel[1]*s.Vel[1] + s.Vel[2]*s.Vel[2])
		if speed > maxSpeed {
			maxSpeed = speed
		}
		data = append(data, opts.ScatterData{Value: []interface{}{s.Pos[0], s.Pos[1], speed}})
	}
	if maxSpeed == 0 {
		maxSpeed = 1
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Particle positions", Width: "900px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: "Particle positions", Subtitle: fmt.Sprintf("frame=%d particles=%d", frame, len(data))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "X (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Y (m)", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxSpeed),
			Dimension:  "2",
		}),
	)
	scatter.AddSeries("particles", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	return scatter
}

// occupancyLine plots how many particles are alive in each frame of the
// run.
func occupancyLine(trajects []*ptv.Trajectory) *charts.Line {
	counts := make(map[int]int)
	for _, tr := range trajects {
		for _, s := range tr.Samples {
			counts[s.Time]++
		}
	}

	frames := make([]int, 0, len(counts))
	for f := range counts {
		frames = append(frames, f)
	}
	sort.Ints(frames)

	labels := make([]string, len(frames))
	data := make([]opts.LineData, len(frames))
	for i, f := range frames {
		labels[i] = fmt.Sprintf("%d", f)
		data[i] = opts.LineData{Value: counts[f]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Particles per frame"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "frame"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "particles"}),
	)
	line.SetXAxis(labels).AddSeries("particles", data)
	return line
}
