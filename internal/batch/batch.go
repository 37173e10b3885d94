// Package batch computes many charts concurrently. Each job is independent:
// a failing input produces an error result and never aborts the rest of the
// run. The constant tables and the position provider are shared read-only,
// so workers need no locking.
package batch

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/nimblemo/bodygraph/internal/chart"
	"github.com/nimblemo/bodygraph/internal/ephemeris"
	"github.com/nimblemo/bodygraph/internal/telemetry"
)

// Job is one chart computation request.
type Job struct {
	Label string      `toml:"label"`
	Input chart.Input `toml:"input"`
}

// Result pairs a job with its chart or its error.
type Result struct {
	Job   Job
	Chart *chart.Chart
	Err   error
}

// jobFile is the on-disk TOML shape of a batch input.
type jobFile struct {
	Jobs []Job `toml:"jobs"`
}

// LoadJobs reads a batch job file. Labels default to the input's string form.
func LoadJobs(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", path, err)
	}
	var f jobFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("batch: parse %s: %w", path, err)
	}
	if len(f.Jobs) == 0 {
		return nil, fmt.Errorf("batch: %s contains no jobs", path)
	}
	for i := range f.Jobs {
		if f.Jobs[i].Label == "" {
			f.Jobs[i].Label = f.Jobs[i].Input.String()
		}
	}
	return f.Jobs, nil
}

// Run computes all jobs across the given number of workers and returns the
// results in job order. The emitter may be nil.
func Run(p ephemeris.Provider, angles chart.AngleTable, jobs []Job, workers int, em *telemetry.Emitter) []Result {
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	em.Emit(telemetry.KindBatchStart, "", map[string]any{
		"jobs":    len(jobs),
		"workers": workers,
	})

	type indexed struct {
		idx int
		job Job
	}
	work := make(chan indexed)
	results := make([]Result, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for it := range work {
				results[it.idx] = compute(p, angles, it.job, em)
			}
		}()
	}

	for i, j := range jobs {
		work <- indexed{idx: i, job: j}
	}
	close(work)
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	em.Emit(telemetry.KindBatchDone, "", map[string]any{
		"jobs":   len(jobs),
		"failed": failed,
	})

	return results
}

func compute(p ephemeris.Provider, angles chart.AngleTable, job Job, em *telemetry.Emitter) Result {
	em.Emit(telemetry.KindChartStart, job.Label, job.Input)

	c, err := chart.Assemble(p, job.Input, angles)
	if err != nil {
		em.Emit(telemetry.KindChartFailed, job.Label, map[string]any{"error": err.Error()})
		return Result{Job: job, Err: err}
	}

	em.Emit(telemetry.KindChartDone, job.Label, map[string]any{
		"type":      c.Type.Key(),
		"authority": c.Authority.Key(),
		"profile":   c.Profile.String(),
	})
	return Result{Job: job, Chart: c}
}

// Failed returns the labels of all failed results, sorted.
func Failed(results []Result) []string {
	var labels []string
	for _, r := range results {
		if r.Err != nil {
			labels = append(labels, r.Job.Label)
		}
	}
	sort.Strings(labels)
	return labels
}
