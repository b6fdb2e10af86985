package comparison

import (
	"context"
	"errors"
	"time"

	"csv-comparison/core/compare"
	"csv-comparison/core/logger"
	"csv-comparison/feature/definition"
	"csv-comparison/feature/history"

	"go.uber.org/zap"
)

var (
	// ErrHistoryDisabled is returned by history lookups when no store is configured.
	ErrHistoryDisabled = errors.New("comparison history is not enabled")
	// ErrNoCatalog is returned when a definition key is used without a configured catalog.
	ErrNoCatalog = errors.New("no definition catalog is configured")
)

// Outcome is a finished comparison.
type Outcome struct {
	// ID is the history id, zero when the run was not recorded.
	ID        uint            `json:"id,omitempty"`
	ElapsedMs int64           `json:"elapsed_ms"`
	Result    *compare.Result `json:"result"`

	Elapsed time.Duration `json:"-"`
}

// Service runs comparisons and records them.
type Service struct {
	opener      compare.Opener
	store       *history.Store
	definitions *definition.Cache
	logger      *zap.Logger
	timeout     time.Duration
}

// NewService creates a comparison service. store may be nil to disable history and
// definitions may be nil when requests always carry their own definition.
func NewService(opener compare.Opener, store *history.Store, definitions *definition.Cache, logger *zap.Logger, timeout time.Duration) *Service {
	return &Service{
		opener:      opener,
		store:       store,
		definitions: definitions,
		logger:      logger,
		timeout:     timeout,
	}
}

// Definition resolves a catalog entry by key.
func (s *Service) Definition(key string) (compare.Definition, error) {
	if s.definitions == nil {
		return compare.Definition{}, ErrNoCatalog
	}
	entry, err := s.definitions.Lookup(key)
	if err != nil {
		return compare.Definition{}, err
	}
	return entry.Definition, nil
}

// HistoryEnabled reports whether runs are recorded.
func (s *Service) HistoryEnabled() bool {
	return s.store != nil
}

// Run compares candidate against reference under def.
// A failure to record the run is logged and does not fail the comparison.
func (s *Service) Run(ctx context.Context, def compare.Definition, reference, candidate string) (*Outcome, error) {
	comparer, err := compare.NewComparer(def, compare.WithLogger(s.logger), compare.WithOpener(s.opener))
	if err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := comparer.CompareFiles(ctx, reference, candidate)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	outcome := &Outcome{
		ElapsedMs: elapsed.Milliseconds(),
		Result:    result,
		Elapsed:   elapsed,
	}

	if s.store != nil {
		id, err := s.store.Save(context.WithoutCancel(ctx), def, result, elapsed)
		if err != nil {
			s.logger.Warn("Failed to record comparison", zap.Error(err))
		} else {
			outcome.ID = id
		}
	}

	logger.WithSources(s.logger, reference, candidate).Info("Comparison finished",
		zap.Int("breaks", len(result.Breaks)),
		zap.Duration("elapsed", elapsed),
	)
	return outcome, nil
}

// List returns recorded runs, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]history.Run, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}
	return s.store.List(ctx, limit, offset)
}

// Get returns a recorded run with its breaks.
func (s *Service) Get(ctx context.Context, id uint) (*history.Run, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}
	return s.store.Get(ctx, id)
}
