package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"morphshape/internal/batch"
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
	outCSV := flag.String("out", "", "Output CSV path (default: stdout)")
	variant := flag.String("variant", "", "Skeleton variant: hawk, spider, or YAML file path (default: hawk)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	pitchStep := flag.Float64("pitch-step", 0, "Per-frame pitch increment in degrees")
	yawStep := flag.Float64("yaw-step", 0, "Per-frame yaw increment in degrees")
	horzStep := flag.Float64("horz-step", 0, "Per-frame horizontal offset increment")
	vertStep := flag.Float64("vert-step", 0, "Per-frame vertical offset increment")

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
	cfg.Resolve(config.Flags{
		DataCSV:   *dataCSV,
		OutputCSV: *outCSV,
		Variant:   *variant,
		Workers:   *workers,
	})

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

	// Per-frame moving-marker coordinates, in canonical order.
	moving := make(shape.Pose, len(data.Frames))
	for f, frame := range data.Frames {
		sel := make([]mgl64.Vec3, len(layout.Moving))
		for i, j := range layout.Moving {
			sel[i] = frame[j]
		}
		moving[f] = sel
	}

	n := len(data.Frames)
	params := batch.Params{
		PitchDeg: ramp(*pitchStep, n),
		YawDeg:   ramp(*yawStep, n),
		HorzDist: ramp(*horzStep, n),
		VertDist: ramp(*vertStep, n),
	}

	start := time.Now()
	results := batch.Run(batch.Config{
		Layout:    layout,
		Reference: data.ReferencePose(),
		Strict:    cfg.Strict,
		Workers:   cfg.Workers,
	}, moving, params)

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
			fmt.Fprintf(os.Stderr, "frame %d: %s\n", r.Frame, r.Error)
		}
	}

	if err := writePoses(cfg.OutputCSV, data.MarkerNames, results); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	if cfg.OutputCSV != "" {
		manifest := batch.NewManifest(cfg.DataCSV, cfg.OutputCSV, cfg.Variant,
			data.MarkerNames, params, results)
		if err := manifest.Write(cfg.OutputCSV + ".manifest.json"); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing manifest: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Fprintf(os.Stderr, "Composed %d frames (%d failed) in %s\n",
		n-failed, failed, time.Since(start).Round(time.Millisecond))
}

// ramp builds a per-frame column 0, step, 2*step, ...
func ramp(step float64, n int) []float64 {
	if step == 0 {
		return nil
	}
	col := make([]float64, n)
	for i := range col {
		col[i] = float64(i) * step
	}
	return col
}

// writePoses writes one row of flattened coordinates per composed frame,
// under the canonical per-axis header. Failed frames are omitted, so row
// numbers only match input frame numbers on a clean run; the manifest's
// failed_frames list records which input frames are missing.
func writePoses(path string, markerNames []string, results []batch.Result) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	defer w.Flush()

	header := make([]string, 0, 3*len(markerNames))
	for _, name := range markerNames {
		header = append(header, name+"_x", name+"_y", name+"_z")
	}
	fmt.Fprintln(w, strings.Join(header, ","))

	for _, r := range results {
		if r.Error != "" {
			continue
		}
		for i, pt := range r.Pose {
			if i > 0 {
				w.WriteByte(',')
			}
			fmt.Fprintf(w, "%.6f,%.6f,%.6f", pt.X(), pt.Y(), pt.Z())
		}
		w.WriteByte('\n')
	}
	return nil
}
