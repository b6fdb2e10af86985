package compare

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDefinition is returned by NewComparer for a malformed definition.
	ErrInvalidDefinition = errors.New("invalid comparison definition")

	// ErrNoKeyColumns means key columns were configured but none exist in the header row.
	ErrNoKeyColumns = errors.New("no columns match the key columns defined in configuration")

	// ErrDuplicateKey means the key columns do not identify rows uniquely.
	ErrDuplicateKey = errors.New("duplicate orphan key")
)

// DuplicateKeyError reports a key seen twice on one side before being matched.
type DuplicateKeyError struct {
	// Side is ReferenceLabel or CandidateLabel.
	Side string
	// Key is the repeated composite key.
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s orphan %s already exists. This usually means the key columns do not define unique rows.", e.Side, e.Key)
}

// Is makes errors.Is(err, ErrDuplicateKey) match.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}
