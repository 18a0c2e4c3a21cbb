// Command traj-export reconstructs trajectories from raw frame files and
// writes them to a SQLite database for downstream analysis.
package main

import (
	"flag"
	"log"

	"github.com/alexlib/postptv/internal/frameio"
	"github.com/alexlib/postptv/internal/trajdb"
)

func main() {
	var (
		pattern string
		format  string
		first   int
		last    int
		frate   float64
		dbPath  string
	)

	flag.StringVar(&pattern, "data", "", "frame file template with one %d for the frame number")
	flag.StringVar(&format, "format", "", "raw data format: ptvis, xuap or acc (default: infer)")
	flag.IntVar(&first, "first", 0, "first frame to read")
	flag.IntVar(&last, "last", 0, "last frame to read (0 reads to the end)")
	flag.Float64Var(&frate, "frate", 1.0, "frame rate for velocity estimation")
	flag.StringVar(&dbPath, "db", "trajectories.db", "path to output sqlite db")
	flag.Parse()

	if pattern == "" {
		log.Fatalf("-data must be provided")
	}

	trajects, err := frameio.Trajectories(pattern, first, last, frate, frameio.Format(format))
	if err != nil {
		log.Fatalf("reconstruct trajectories: %v", err)
	}

	db, err := trajdb.Open(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := db.InsertTrajectories(trajects); err != nil {
		log.Fatalf("export trajectories: %v", err)
	}
	log.Printf("exported %d trajectories to %s", len(trajects), dbPath)
}
