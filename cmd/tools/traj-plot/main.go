// Command traj-plot renders the XY paths of reconstructed trajectories to
// a PNG for quick visual inspection of a run.
package main

import (
	"flag"
	"image/color"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexlib/postptv/internal/frameio"
)

// palette cycles across trajectories so neighbouring paths stay
// distinguishable.
var palette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
}

func main() {
	var (
		pattern string
		format  string
		first   int
		last    int
		frate   float64
		out     string
	)

	flag.StringVar(&pattern, "data", "", "frame file template with one %d for the frame number")
	flag.StringVar(&format, "format", "", "raw data format: ptvis, xuap or acc (default: infer)")
	flag.IntVar(&first, "first", 0, "first frame to read")
	flag.IntVar(&last, "last", 0, "last frame to read (0 reads to the end)")
	flag.Float64Var(&frate, "frate", 1.0, "frame rate for velocity estimation")
	flag.StringVar(&out, "out", "trajectories.png", "output PNG path")
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

	p := plot.New()
	p.Title.Text = "Particle trajectories"
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"

	for i, tr := range trajects {
		pts := make(plotter.XYs, len(tr.Samples))
		for j, s := range tr.Samples {
			pts[j].X = s.Pos[0]
			pts[j].Y = s.Pos[1]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			log.Fatalf("build line for trajectory %d: %v", tr.ID, err)
		}
		line.Color = palette[i%len(palette)]
		line.Width = vg.Points(1)
		p.Add(line)
	}

	if err := p.Save(8*vg.Inch, 8*vg.Inch, out); err != nil {
		log.Fatalf("save plot: %v", err)
	}
	log.Printf("wrote %d trajectories to %s", len(trajects), out)
}
