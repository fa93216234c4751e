// Command mazedump generates a maze and writes its ASCII report to a file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	pb "github.com/beka-birhanu/vinom-maze/encoder/pb"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/report"
	"github.com/beka-birhanu/vinom-maze/service"
)

func main() {
	rows := flag.Int("rows", 10, "number of rows (at least 2)")
	cols := flag.Int("cols", 10, "number of columns (at least 2)")
	seed := flag.Int64("seed", 0, "random seed; 0 picks one from the clock")
	out := flag.String("out", "maze.txt", "file to write the report to")
	maxDim := flag.Int("max", 200, "largest accepted dimension")
	flag.Parse()

	log, err := logger.New("MAZEDUMP", "", os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	svc, err := service.NewMazeService(&service.MazeOptions{
		Encoder:      pb.Protobuf{},
		Logger:       log,
		MaxDimension: *maxDim,
	})
	if err != nil {
		log.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}

	layout, err := svc.Generate(context.Background(), *rows, *cols, *seed)
	if err != nil {
		log.Error(fmt.Sprintf("Generating maze: %v", err))
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Error(fmt.Sprintf("Creating %s: %v", *out, err))
		os.Exit(1)
	}
	if err := report.WriteASCII(f, layout, time.Now()); err != nil {
		_ = f.Close()
		log.Error(fmt.Sprintf("Writing report: %v", err))
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		log.Error(fmt.Sprintf("Closing %s: %v", *out, err))
		os.Exit(1)
	}

	path, _ := filepath.Abs(*out)
	log.Info(fmt.Sprintf("Maze %dx%d (seed %d) printed to %s", *rows, *cols, *seed, path))
}
