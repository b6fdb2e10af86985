package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"csv-comparison/core/compare"
	"csv-comparison/core/database"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("comparison run not found")

const (
	defaultListLimit = 50
	maxListLimit     = 500
	insertBatchSize  = 500
)

// Store persists comparison runs.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store on db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates the history tables.
func (s *Store) AutoMigrate() error {
	if err := s.db.AutoMigrate(&Run{}, &Break{}); err != nil {
		return fmt.Errorf("failed to migrate history tables: %w", err)
	}
	return nil
}

// CheckSchema returns the columns the models expect but the tables lack.
func (s *Store) CheckSchema() ([]string, error) {
	var missing []string
	for _, model := range []any{&Run{}, &Break{}} {
		stmt := &gorm.Statement{DB: s.db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model: %w", err)
		}

		expected := make([]string, 0, len(stmt.Schema.DBNames))
		expected = append(expected, stmt.Schema.DBNames...)

		cols, err := database.MissingColumns(s.db, stmt.Schema.Table, expected)
		if err != nil {
			return nil, err
		}
		for _, col := range cols {
			missing = append(missing, stmt.Schema.Table+"."+col)
		}
	}
	return missing, nil
}

// Save records a finished comparison and returns its id.
func (s *Store) Save(ctx context.Context, def compare.Definition, result *compare.Result, elapsed time.Duration) (uint, error) {
	run := newRun(def, result, elapsed)
	err := s.db.WithContext(ctx).
		Session(&gorm.Session{CreateBatchSize: insertBatchSize}).
		Create(run).Error
	if err != nil {
		return 0, fmt.Errorf("failed to save comparison run: %w", err)
	}
	return run.ID, nil
}

// Get loads a run with its breaks in detection order.
func (s *Store) Get(ctx context.Context, id uint) (*Run, error) {
	var run Run
	err := s.db.WithContext(ctx).
		Preload("Breaks", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&run, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load comparison run: %w", err)
	}
	return &run, nil
}

// List returns runs newest first, without their breaks.
func (s *Store) List(ctx context.Context, limit, offset int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	var runs []Run
	err := s.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comparison runs: %w", err)
	}
	return runs, nil
}
