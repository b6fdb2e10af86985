package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"csv-comparison/core/logger"
	"csv-comparison/feature/testdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	generateRows int
	generateOut  string
	generateSeed uint64
)

// generateCmd writes a sample reference/candidate pair
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate sample reference and candidate files",
	Long: `Writes referenceTest.csv and candidateTest.csv with the columns COL A to COL D.
COL A is the row number; compare the files with COL A as the key column.
Every 100th candidate row is redrawn at random and will usually show up as a break.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if generateRows < 0 {
			return fmt.Errorf("rows must not be negative")
		}
		l, err := logger.New(&logger.Config{Level: "info", Format: "console"})
		if err != nil {
			return err
		}
		defer l.Sync()

		if err := os.MkdirAll(generateOut, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		refPath := filepath.Join(generateOut, "referenceTest.csv")
		candPath := filepath.Join(generateOut, "candidateTest.csv")

		ref, err := os.Create(refPath)
		if err != nil {
			return err
		}
		defer ref.Close()
		cand, err := os.Create(candPath)
		if err != nil {
			return err
		}
		defer cand.Close()

		seed := generateSeed
		if seed == 0 {
			seed = rand.Uint64()
		}
		if err := testdata.Generate(ref, cand, generateRows, rand.New(rand.NewPCG(seed, seed))); err != nil {
			return fmt.Errorf("failed to write test data: %w", err)
		}

		l.Info("Generated test data",
			zap.String("reference", refPath),
			zap.String("candidate", candPath),
			zap.Int("rows", generateRows),
			zap.Uint64("seed", seed),
		)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&generateRows, "rows", 10000, "Number of data rows to generate")
	generateCmd.Flags().StringVar(&generateOut, "out", ".", "Directory to write the files to")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "Random seed (0 picks one)")
	RootCmd.AddCommand(generateCmd)
}
