package soak

import (
	"fmt"
	"io"
)

// Report aggregates a soak batch
type Report struct {
	Batch      string
	Runs       []RunResult
	Completed  int // Runs without error
	Failed     int
	GameOvers  int
	Violations int
	MaxScore   int
	MeanTicks  float64
	MeanScore  float64
}

// NewReport summarises results
func NewReport(batch string, results []RunResult) *Report {
	r := &Report{Batch: batch, Runs: results}

	var ticks, score float64
	for _, res := range results {
		if res.Err != nil {
			r.Failed++
			continue
		}
		r.Completed++
		if res.GameOver {
			r.GameOvers++
		}
		r.Violations += len(res.Violations)
		if res.Score > r.MaxScore {
			r.MaxScore = res.Score
		}
		ticks += float64(res.Ticks)
		score += float64(res.Score)
	}
	if r.Completed > 0 {
		r.MeanTicks = ticks / float64(r.Completed)
		r.MeanScore = score / float64(r.Completed)
	}
	return r
}

// OK reports a batch with no failures and no violations
func (r *Report) OK() bool {
	return r.Failed == 0 && r.Violations == 0
}

// Write prints a human readable summary and the first violations of each run
func (r *Report) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "batch %s: %d runs, %d completed, %d failed, %d game over\n",
		r.Batch, len(r.Runs), r.Completed, r.Failed, r.GameOvers); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "score max %d mean %.1f, ticks mean %.0f, violations %d\n",
		r.MaxScore, r.MeanScore, r.MeanTicks, r.Violations); err != nil {
		return err
	}

	for _, res := range r.Runs {
		if res.Err != nil {
			fmt.Fprintf(w, "  seed %d: error: %v\n", res.Seed, res.Err)
			continue
		}
		for i, v := range res.Violations {
			if i == 3 {
				fmt.Fprintf(w, "  seed %d: ... %d more\n", res.Seed, len(res.Violations)-i)
				break
			}
			fmt.Fprintf(w, "  seed %d (%s): %s\n", res.Seed, res.ID, v)
		}
	}
	return nil
}
