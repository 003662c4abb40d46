// Package naming picks Name labels for new instances.
package naming

import (
	"errors"
	"fmt"
	"regexp"
)

var labelPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

var (
	ErrInvalidName   = errors.New("invalid instance name")
	ErrDuplicateName = errors.New("duplicate instance name")
	ErrNameTaken     = errors.New("instance name already in use")
)

// NextNames returns count names of the form base-N, lowest N first,
// skipping names in taken.
func NextNames(base string, count int, taken map[string]bool) ([]string, error) {
	if !labelPattern.MatchString(base) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, base)
	}
	if count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	names := []string{}
	for n := 1; len(names) < count; n++ {
		name := fmt.Sprintf("%s-%d", base, n)
		if taken[name] {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Validate checks explicit names: each must be a valid label, appear once
// and not be in taken.
func Validate(names []string, taken map[string]bool) error {
	seen := map[string]bool{}
	for _, n := range names {
		if !labelPattern.MatchString(n) {
			return fmt.Errorf("%w: %q", ErrInvalidName, n)
		}
		if seen[n] {
			return fmt.Errorf("%w: %s", ErrDuplicateName, n)
		}
		if taken[n] {
			return fmt.Errorf("%w: %s", ErrNameTaken, n)
		}
		seen[n] = true
	}
	return nil
}
