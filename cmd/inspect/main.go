package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"morphshape/internal/config"
	"morphshape/internal/markers"
	"morphshape/internal/mocap"
	"morphshape/internal/shape"
	"morphshape/internal/skeleton"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	dataCSV := flag.String("data", "", "Path to marker capture CSV")
	variant := flag.String("variant", "", "Skeleton variant: hawk, spider, or YAML file path (default: hawk)")
	strict := flag.Bool("strict", false, "Require pose updates to carry the full moving-marker set")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cfg.FromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{DataCSV: *dataCSV, Variant: *variant})
	if *strict {
		cfg.Strict = true
	}

	if cfg.DataCSV == "" {
		fmt.Fprintln(os.Stderr, "Error: no capture CSV. Use -data flag, config.json, or MORPHSHAPE_DATA_CSV.")
		os.Exit(1)
	}

	schema, err := skeleton.Variant(cfg.Variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading skeleton: %v\n", err)
		os.Exit(1)
	}

	data, err := mocap.LoadCSV(cfg.DataCSV)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading capture: %v\n", err)
		os.Exit(1)
	}

	layout, err := markers.NewLayout(schema, data.MarkerNames)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving markers: %v\n", err)
		os.Exit(1)
	}

	st, err := shape.NewState(layout, data.ReferencePose(), cfg.Strict)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing pose: %v\n", err)
		os.Exit(1)
	}

	view, err := shape.NewPolygonView(schema, data.MarkerNames)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building sections: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Capture: %s (%d frames)\n", cfg.DataCSV, len(data.Frames))
	fmt.Printf("Skeleton: %s\n", schema)

	fmt.Println("\nColumn order:")
	for i, name := range data.MarkerNames {
		fmt.Printf("  %2d  %s\n", i, name)
	}

	fmt.Printf("\nMoving indices: %v\n", layout.Moving)
	fmt.Printf("Fixed indices:  %v\n", layout.Fixed)
	fmt.Printf("Right indices:  %v\n", layout.Right)
	fmt.Printf("Left indices:   %v\n", layout.Left)

	fmt.Println("\nSections:")
	for _, name := range view.SectionNames() {
		idx, _ := view.Indices(name)
		fmt.Printf("  %-16s %v\n", name, idx)
	}

	min, max := st.BoundingBox()
	fmt.Printf("\nBounding box: min (%.3f, %.3f, %.3f)  max (%.3f, %.3f, %.3f)\n",
		min.X(), min.Y(), min.Z(), max.X(), max.Y(), max.Z())

	warnPolygonLayout(view, st.CurrentFrame())
}

// warnPolygonLayout reports anatomically implausible section placement for
// bilateral skeletons: a left wing right of the right wing, a tail ahead
// of the wings. Warnings only; an unusual capture is not an error.
func warnPolygonLayout(view *shape.PolygonView, frame []mgl64.Vec3) {
	left, lerr := view.Coords("left_handwing", frame)
	right, rerr := view.Coords("right_handwing", frame)
	if lerr == nil && rerr == nil && left[0].X() >= right[0].X() {
		fmt.Println("Warning: left handwing is not left of the right handwing")
	}
	tail, terr := view.Coords("tail", frame)
	if terr == nil && lerr == nil && tail[0].Y() >= left[0].Y() {
		fmt.Println("Warning: tail is not behind the wings")
	}
}
