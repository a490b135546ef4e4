// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import (
	"sync"

	"github.com/gogpu/tess/geom"
	"github.com/gogpu/tess/internal/parallel"
	"github.com/gogpu/tess/path"
)

// tessellators recycles engines across batch calls. Instances handed
// out by the pool never carry a tracer.
var tessellators = sync.Pool{
	New: func() any { return NewFillTessellator() },
}

// TessellateAll fills each path into the builder at the same index,
// spreading the work across a pool of workers. One tessellator runs
// per task, so builders are never shared between goroutines; opts is
// read-only and may be shared. Zero or negative workers means
// GOMAXPROCS.
//
// The whole batch always runs to completion. Per-path failures do not
// stop the other paths; the error for the lowest failing index is
// returned alongside the counts, and the counts of failed paths stay
// zero.
func TessellateAll(paths []*path.Path, opts *FillOptions, builders []geom.Builder, workers int) ([]geom.Count, error) {
	if len(builders) != len(paths) {
		return nil, &UnsupportedParameterError{Reason: MismatchedBuilderCount}
	}
	counts := make([]geom.Count, len(paths))
	if len(paths) == 0 {
		return counts, nil
	}

	errs := make([]error, len(paths))
	run := func(i int) {
		tt := tessellators.Get().(*FillTessellator)
		counts[i], errs[i] = tt.TessellatePath(paths[i], opts, builders[i])
		tessellators.Put(tt)
	}

	if len(paths) == 1 || workers == 1 {
		for i := range paths {
			run(i)
		}
	} else {
		tasks := make([]func(), len(paths))
		for i := range paths {
			tasks[i] = func() { run(i) }
		}
		pool := parallel.NewWorkerPool(workers)
		pool.ExecuteAll(tasks)
		pool.Close()
	}

	for _, err := range errs {
		if err != nil {
			return counts, err
		}
	}
	return counts, nil
}
