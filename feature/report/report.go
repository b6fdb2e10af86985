package report

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"csv-comparison/core/compare"
	"csv-comparison/core/storage"
	"csv-comparison/feature/definition"

	"go.uber.org/zap"
)

const (
	// SingleName is the report file for a one-off comparison.
	SingleName = "ComparisonResults.csv"

	breaksSuffix = ".BREAKS.csv"
	dateLayout   = "2006-01-02 15:04:05"
	contentType  = "text/csv"
)

// BatchName is the report file for catalog entry key.
func BatchName(key string) string {
	return fmt.Sprintf("Reconciliation-Results-%s.csv", key)
}

// FileName returns the report file name, marking reports that contain breaks.
func FileName(name string, result *compare.Result) string {
	if result.HasBreaks() {
		return strings.TrimSuffix(name, ".csv") + breaksSuffix
	}
	return name
}

// Writer writes report files into a directory.
type Writer struct {
	dir    string
	log    *zap.Logger
	client storage.Client
	bucket string
	prefix string

	mu      sync.Mutex
	written map[string]struct{}
}

// Option configures a Writer.
type Option func(*Writer)

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(w *Writer) { w.log = log }
}

// WithUpload uploads each written report to bucket under prefix.
func WithUpload(client storage.Client, bucket, prefix string) Option {
	return func(w *Writer) {
		w.client = client
		w.bucket = bucket
		w.prefix = prefix
	}
}

// NewWriter creates a Writer for dir, creating the directory if needed.
func NewWriter(dir string, opts ...Option) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	w := &Writer{
		dir:     dir,
		log:     zap.NewNop(),
		written: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Write saves result under name and returns the path written.
func (w *Writer) Write(ctx context.Context, name string, def compare.Definition, result *compare.Result, elapsed time.Duration) (string, error) {
	file := filepath.Join(w.dir, FileName(name, result))

	w.mu.Lock()
	_, appendTo := w.written[file]
	w.written[file] = struct{}{}
	w.mu.Unlock()

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendTo {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}

	f, err := os.OpenFile(file, flags, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to open report: %w", err)
	}

	if err := render(f, def, result, elapsed, !appendTo); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close report: %w", err)
	}

	w.log.Info("Saved comparison report", zap.String("path", file))

	if w.client != nil && w.bucket != "" {
		object := path.Join(w.prefix, filepath.Base(file))
		if err := storage.Upload(ctx, w.client, w.bucket, object, file, contentType); err != nil {
			return file, err
		}
		w.log.Info("Uploaded comparison report", zap.String("bucket", w.bucket), zap.String("object", object))
	}
	return file, nil
}

func render(f *os.File, def compare.Definition, result *compare.Result, elapsed time.Duration, withDefinition bool) error {
	out := bufio.NewWriter(f)

	if withDefinition {
		data, err := definition.MarshalXML(def)
		if err != nil {
			return fmt.Errorf("failed to encode definition: %w", err)
		}
		out.Write(data)
		out.WriteString("\n\n")
	}
	out.WriteString("\n")

	cw := csv.NewWriter(out)
	summary := [][]string{
		{"Date run", result.Date.Format(dateLayout)},
		{"Reference", result.ReferenceSource},
		{"Candidate", result.CandidateSource},
		{"Number of Reference rows", strconv.FormatInt(result.ReferenceRows, 10)},
		{"Number of Candidate rows", strconv.FormatInt(result.CandidateRows, 10)},
		{"Duration", fmt.Sprintf("%dms", elapsed.Milliseconds())},
		{"Number of breaks", strconv.Itoa(len(result.Breaks))},
	}
	if err := cw.WriteAll(summary); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	out.WriteString("\n")

	if result.HasBreaks() {
		cw.Write([]string{
			"Break Type",
			fmt.Sprintf("Key (%s)", result.KeyDefinition),
			"Column Name",
			"Reference Row",
			"Reference Value",
			"Candidate Row",
			"Candidate Value",
		})
		for _, b := range result.Breaks {
			cw.Write([]string{
				string(b.Type),
				b.Key,
				b.Column,
				strconv.Itoa(b.ReferenceRow),
				b.ReferenceValue,
				strconv.Itoa(b.CandidateRow),
				b.CandidateValue,
			})
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
