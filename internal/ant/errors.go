package ant

import (
	"fmt"
	"math/big"
	"strings"
)

// InvalidInputError reports a user-supplied value the simulation cannot use.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// ParseSeed parses a positive decimal seed of any size.
func ParseSeed(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	seed, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, &InvalidInputError{Field: "seed", Value: s, Reason: "not an integer"}
	}
	if seed.Sign() <= 0 {
		return nil, &InvalidInputError{Field: "seed", Value: s, Reason: "must be a positive integer"}
	}
	return seed, nil
}
