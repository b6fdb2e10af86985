package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"csv-comparison/core/compare"
	"csv-comparison/core/logger"
	"csv-comparison/feature/definition"
	"csv-comparison/feature/report"

	"go.uber.org/zap"
)

// Status is the outcome of one reference file.
type Status string

const (
	StatusCompared Status = "compared"
	StatusSkipped  Status = "skipped"
	StatusFailed   Status = "failed"
)

// Outcome describes what happened to one reference file.
type Outcome struct {
	Reference string
	Candidate string
	// Key is the catalog entry used, empty when none matched.
	Key     string
	Status  Status
	Reason  string
	Result  *compare.Result
	Elapsed time.Duration
	// Report is the report file written, if any.
	Report string
	Err    error
}

// Recorder stores finished comparisons.
type Recorder interface {
	Save(ctx context.Context, def compare.Definition, result *compare.Result, elapsed time.Duration) (uint, error)
}

// Runner runs batch comparisons.
type Runner struct {
	catalog  *definition.Catalog
	opener   compare.Opener
	writer   *report.Writer
	recorder Recorder
	log      *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// WithOpener sets how files are opened.
func WithOpener(opener compare.Opener) Option {
	return func(r *Runner) { r.opener = opener }
}

// WithReports writes a report per catalog entry through w.
func WithReports(w *report.Writer) Option {
	return func(r *Runner) { r.writer = w }
}

// WithRecorder records every finished comparison.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) { r.recorder = rec }
}

// NewRunner creates a Runner for catalog.
func NewRunner(catalog *definition.Catalog, opts ...Option) *Runner {
	r := &Runner{
		catalog: catalog,
		opener:  compare.FileOpener{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run compares the files of referenceDir with those of candidateDir, in file name order.
// Per-file problems are reported in the outcomes; the returned error is reserved for
// unreadable directories and cancellation.
func (r *Runner) Run(ctx context.Context, referenceDir, candidateDir string) ([]Outcome, error) {
	references, err := listFiles(referenceDir)
	if err != nil {
		return nil, err
	}
	candidates, err := listFiles(candidateDir)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(references))
	for _, name := range references {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		outcome := r.compareFile(ctx, name, referenceDir, candidateDir, candidates)
		r.logOutcome(outcome)
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

func (r *Runner) compareFile(ctx context.Context, name, referenceDir, candidateDir string, candidates []string) Outcome {
	outcome := Outcome{Reference: filepath.Join(referenceDir, name)}

	entry, err := r.catalog.Match(name)
	if err != nil {
		outcome.Status = StatusSkipped
		outcome.Reason = err.Error()
		return outcome
	}
	outcome.Key = entry.Key

	candidate, err := findCandidate(entry, name, candidates)
	if err != nil {
		outcome.Status = StatusSkipped
		outcome.Reason = err.Error()
		return outcome
	}
	outcome.Candidate = filepath.Join(candidateDir, candidate)

	comparer, err := compare.NewComparer(entry.Definition, compare.WithLogger(r.log), compare.WithOpener(r.opener))
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Err = err
		return outcome
	}

	start := time.Now()
	result, err := comparer.CompareFiles(ctx, outcome.Reference, outcome.Candidate)
	outcome.Elapsed = time.Since(start)
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Err = err
		return outcome
	}
	outcome.Status = StatusCompared
	outcome.Result = result

	if r.writer != nil {
		path, err := r.writer.Write(ctx, report.BatchName(entry.Key), entry.Definition, result, outcome.Elapsed)
		outcome.Report = path
		if err != nil {
			r.log.Error("Failed to write report", zap.String("key", entry.Key), zap.Error(err))
		}
	}
	if r.recorder != nil {
		if _, err := r.recorder.Save(ctx, entry.Definition, result, outcome.Elapsed); err != nil {
			r.log.Warn("Failed to record comparison", zap.String("key", entry.Key), zap.Error(err))
		}
	}
	return outcome
}

func (r *Runner) logOutcome(o Outcome) {
	switch o.Status {
	case StatusSkipped:
		r.log.Warn("Skipped file", zap.String("reference", o.Reference), zap.String("reason", o.Reason))
	case StatusFailed:
		logger.WithSources(r.log, o.Reference, o.Candidate).Error("Comparison failed", zap.Error(o.Err))
	default:
		l := logger.WithSources(r.log, o.Reference, o.Candidate)
		fields := []zap.Field{
			zap.String("key", o.Key),
			zap.Int("breaks", len(o.Result.Breaks)),
			zap.Duration("elapsed", o.Elapsed),
		}
		if o.Result.HasBreaks() {
			l.Warn("Comparison found differences", fields...)
		} else {
			l.Info("Comparison matched", fields...)
		}
	}
}

var errNoCandidate = errors.New("no candidate file")

// findCandidate picks the candidate for reference file name: the same name if present,
// otherwise the only candidate matching the entry's pattern.
func findCandidate(entry *definition.FileDefinition, name string, candidates []string) (string, error) {
	var matches []string
	for _, c := range candidates {
		if c == name {
			return c, nil
		}
		if entry.Matches(c) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w for %s", errNoCandidate, name)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%d candidate files match %s", len(matches), entry.FilePattern)
	}
}

// listFiles returns the regular files of dir sorted by name.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Summary counts outcomes by status.
func Summary(outcomes []Outcome) map[Status]int {
	counts := make(map[Status]int)
	for _, o := range outcomes {
		counts[o.Status]++
	}
	return counts
}
