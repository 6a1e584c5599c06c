// Package dumper runs the export phases: a fixed list of independent
// export tasks runs with bounded parallelism against the read-only
// store, then the search documents they accumulated are written as a
// single collection. Any task failure is fatal to the build.
package dumper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"callboard/internal/config"
	"callboard/internal/logging"
	"callboard/internal/search"
	"callboard/internal/store"
)

// Dumper writes the artifact tree for one build.
type Dumper struct {
	st     *store.Store
	cfg    *config.Config
	logger *slog.Logger
	acc    *search.Accumulator
	now    time.Time
}

// New builds a dumper for one run.
func New(st *store.Store, cfg *config.Config, logger *slog.Logger) *Dumper {
	return &Dumper{
		st:     st,
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "dumper"),
		acc:    &search.Accumulator{},
		now:    time.Now(),
	}
}

type task struct {
	name string
	run  func(ctx context.Context) error
}

// Run resets the output directory, runs every export task, then
// writes the search collection.
func (d *Dumper) Run(ctx context.Context) error {
	if err := d.ResetOutputDir(); err != nil {
		return err
	}

	tasks := []task{
		{name: "shows", run: d.exportShows},
		{name: "years", run: d.exportYears},
		{name: "real people", run: d.exportRealPeople},
		{name: "virtual people", run: d.exportVirtualPeople},
		{name: "role indexes", run: d.exportRoles},
		{name: "playwrights", run: d.exportPlaywrights},
		{name: "plays", run: d.exportPlays},
		{name: "venues", run: d.exportVenues},
		{name: "history", run: d.exportHistory},
		{name: "site stats", run: d.exportSiteStats},
	}
	if err := d.runTasks(ctx, tasks); err != nil {
		return err
	}

	return d.exportSearchDocuments()
}

// runTasks drains the task list through a bounded worker pool. The
// first failure wins; remaining tasks still drain but their errors
// are only logged.
func (d *Dumper) runTasks(ctx context.Context, tasks []task) error {
	workers := d.cfg.Build.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(tasks) {
		workers = len(tasks)
	}

	jobs := make(chan task)
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				start := time.Now()
				if err := job.run(ctx); err != nil {
					wrapped := fmt.Errorf("export %s: %w", job.name, err)
					errOnce.Do(func() { firstErr = wrapped })
					d.logger.Error("export task failed", logging.FieldTask, job.name, "error", err)
					continue
				}
				d.logger.Info("export task finished", logging.FieldTask, job.name, "elapsed", time.Since(start).Round(time.Millisecond))
			}
		}()
	}
	for _, job := range tasks {
		jobs <- job
	}
	close(jobs)
	wg.Wait()
	return firstErr
}

// ResetOutputDir deletes and recreates the output tree.
func (d *Dumper) ResetOutputDir() error {
	if err := os.RemoveAll(d.cfg.Paths.OutputDir); err != nil {
		return fmt.Errorf("clear output dir: %w", err)
	}
	if err := os.MkdirAll(d.cfg.Paths.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}

// writeFile marshals v into {output}/{dir}/{file}.json, creating
// parent directories. An empty dir writes at the output root.
func (d *Dumper) writeFile(dir, file string, v any) error {
	path := filepath.Join(d.cfg.Paths.OutputDir, filepath.FromSlash(dir), filepath.FromSlash(file)+".json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", dir, file, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (d *Dumper) exportSearchDocuments() error {
	docs := d.acc.Snapshot()
	d.logger.Info("writing search documents", "count", len(docs))
	return d.writeFile("search", "documents", docs)
}
