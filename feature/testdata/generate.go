package testdata

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
)

// Header is the first line of both generated files.
const Header = "COL A,COL B,COL C,COL D"

// MutationInterval is how often a candidate row is redrawn.
const MutationInterval = 100

var (
	colB = []string{"A", "B", "C", "D"}
	colC = []string{"E", "F", "G", "H"}
	colD = []float64{1.5, 10.5, 32.1, 42.0}
)

// draws only pick from the first three values of each column.
const drawRange = 3

func row(rng *rand.Rand, index int) string {
	return fmt.Sprintf("%d,%s,%s,%s",
		index,
		colB[rng.IntN(drawRange)],
		colC[rng.IntN(drawRange)],
		strconv.FormatFloat(colD[rng.IntN(drawRange)], 'f', -1, 64),
	)
}

// Generate writes rows data rows to reference and candidate.
func Generate(reference, candidate io.Writer, rows int, rng *rand.Rand) error {
	ref := bufio.NewWriter(reference)
	cand := bufio.NewWriter(candidate)

	if _, err := fmt.Fprintln(ref, Header); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cand, Header); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		line := row(rng, i)
		if _, err := fmt.Fprintln(ref, line); err != nil {
			return err
		}
		if i > 0 && i%MutationInterval == 0 {
			line = row(rng, i)
		}
		if _, err := fmt.Fprintln(cand, line); err != nil {
			return err
		}
	}

	if err := ref.Flush(); err != nil {
		return err
	}
	return cand.Flush()
}
