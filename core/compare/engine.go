package compare

import (
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Opener opens a comparison source for streaming.
type Opener interface {
	Open(ctx context.Context, source string) (io.ReadCloser, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(ctx context.Context, source string) (io.ReadCloser, error)

// Open calls f.
func (f OpenerFunc) Open(ctx context.Context, source string) (io.ReadCloser, error) {
	return f(ctx, source)
}

// FileOpener opens sources as local file paths.
type FileOpener struct{}

// Open opens the file at path.
func (FileOpener) Open(_ context.Context, path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Option configures a Comparer.
type Option func(*Comparer)

// WithLogger sets the logger used for diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(c *Comparer) {
		if log != nil {
			c.log = log
		}
	}
}

// WithOpener sets how sources are opened.
func WithOpener(opener Opener) Option {
	return func(c *Comparer) {
		if opener != nil {
			c.opener = opener
		}
	}
}

// Comparer compares pairs of files under one Definition.
// It holds configuration only and is safe for concurrent use.
type Comparer struct {
	def    *compiledDefinition
	log    *zap.Logger
	opener Opener
}

// NewComparer validates def and compiles its exclusion patterns.
func NewComparer(def Definition, opts ...Option) (*Comparer, error) {
	compiled, err := compileDefinition(def)
	if err != nil {
		return nil, err
	}

	c := &Comparer{
		def:    compiled,
		log:    zap.NewNop(),
		opener: FileOpener{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Definition returns the definition the comparer was built with.
func (c *Comparer) Definition() Definition {
	return c.def.Definition
}

// CompareFiles reconciles the candidate source against the reference source.
//
// Unreadable sources do not produce an error; they are reported as a single
// ProcessFailure break. Errors are returned for key columns that match no
// header column (ErrNoKeyColumns), for keys that are not unique
// (*DuplicateKeyError) and for cancellation of ctx.
func (c *Comparer) CompareFiles(ctx context.Context, reference, candidate string) (*Result, error) {
	start := time.Now()
	r := newRun(c.def, c.log)

	g, gctx := errgroup.WithContext(ctx)
	stop := r.watch(gctx)
	defer stop()

	g.Go(func() error {
		return r.load(gctx, c.opener, referenceSide, reference)
	})
	g.Go(func() error {
		return r.load(gctx, c.opener, candidateSide, candidate)
	})
	g.Go(func() error {
		return newReconciler(r).reconcile(gctx)
	})

	if err := g.Wait(); err != nil {
		c.log.Debug("Comparison failed",
			zap.String("reference", reference),
			zap.String("candidate", candidate),
			zap.Error(err),
		)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := r.build(reference, candidate)
	c.log.Debug("Comparison complete",
		zap.String("reference", reference),
		zap.String("candidate", candidate),
		zap.Int("breaks", len(result.Breaks)),
		zap.Int64("reference_rows", result.ReferenceRows),
		zap.Int64("candidate_rows", result.CandidateRows),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}
