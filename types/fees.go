package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// FeeEstimates maps a confirmation target (number of blocks) to the
// estimated fee rate in sat/vB. The upstream API encodes targets as string
// keys; they are converted to integers on decode.
type FeeEstimates map[int]decimal.Decimal

func (f *FeeEstimates) UnmarshalJSON(data []byte) error {
	var raw map[string]json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(FeeEstimates, len(raw))
	for key, rate := range raw {
		target, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("confirmation target %q is not an integer", key)
		}
		d, err := decimal.NewFromString(rate.String())
		if err != nil {
			return fmt.Errorf("fee rate for target %s: %w", key, err)
		}
		out[target] = d
	}
	*f = out
	return nil
}

func (f FeeEstimates) MarshalJSON() ([]byte, error) {
	raw := make(map[string]decimal.Decimal, len(f))
	for target, rate := range f {
		raw[strconv.Itoa(target)] = rate
	}
	return json.Marshal(raw)
}

func (f FeeEstimates) Validate() error {
	for target, rate := range f {
		if target <= 0 {
			return fmt.Errorf("confirmation target must be positive, got %d", target)
		}
		if !rate.IsPositive() {
			return fmt.Errorf("fee rate for target %d must be positive, got %s", target, rate)
		}
	}
	return nil
}

// Targets returns the available confirmation targets in ascending order.
func (f FeeEstimates) Targets() []int {
	targets := make([]int, 0, len(f))
	for target := range f {
		targets = append(targets, target)
	}
	sort.Ints(targets)
	return targets
}
