// Package batch runs pose composition over many capture frames using a
// worker pool. The pose model itself is single-threaded, so every worker
// owns a private ShapeState; no pose buffer is ever shared.
package batch

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"morphshape/internal/markers"
	"morphshape/internal/shape"
)

// Config holds the shared, read-only resources for a sweep run.
type Config struct {
	Layout    *markers.Layout
	Reference shape.Pose
	Strict    bool
	Workers   int

	// Quiet suppresses the periodic progress report.
	Quiet bool
}

// Params holds per-frame pose parameters. A nil or short column reads as
// zero for the missing frames.
type Params struct {
	PitchDeg []float64
	YawDeg   []float64
	HorzDist []float64
	VertDist []float64
}

func at(col []float64, i int) float64 {
	if i < len(col) {
		return col[i]
	}
	return 0
}

// Result holds the outcome of composing one frame.
type Result struct {
	Frame int
	Pose  []mgl64.Vec3
	Error string
}

// Run updates and composes every frame of the capture, returning results
// in frame order. frames carries moving-marker (or one-sided) coordinates
// per frame, as accepted by State.Update.
func Run(cfg Config, frames shape.Pose, params Params) []Result {
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	// Progress reporter
	done := make(chan struct{})
	go func() {
		if cfg.Quiet {
			return
		}
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st, err := shape.NewState(cfg.Layout, cfg.Reference, cfg.Strict)
			if err != nil {
				for idx := range frameChan {
					results[idx] = Result{Frame: idx, Error: err.Error()}
					processed.Add(1)
				}
				return
			}
			for idx := range frameChan {
				results[idx] = composeFrame(st, frames[idx], params, idx)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func composeFrame(st *shape.State, frame []mgl64.Vec3, params Params, idx int) Result {
	// The worker's State is reused across frames; restore the reference
	// first so fixed-marker rows never carry a previous frame's transform.
	st.Restore()
	if err := st.Update(shape.Pose{frame}); err != nil {
		return Result{Frame: idx, Error: err.Error()}
	}
	st.ComposePose(at(params.PitchDeg, idx), at(params.HorzDist, idx),
		at(params.VertDist, idx), at(params.YawDeg, idx))
	return Result{Frame: idx, Pose: st.CurrentFrame()}
}
