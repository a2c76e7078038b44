// Package investment projects a principal compounded by a fixed yearly multiplier.
package investment

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
)

const DefaultYears = 2

// Project - returns principal followed by its value after each of years years.
func Project(multiplier, principal float64, years int) ([]float64, error) {
	if invalid(multiplier) {
		return nil, fmt.Errorf("%w: multiplier %v", apperror.ErrInvalidAmount, multiplier)
	}

	if invalid(principal) {
		return nil, fmt.Errorf("%w: principal %v", apperror.ErrInvalidAmount, principal)
	}

	if years < 0 {
		return nil, fmt.Errorf("%w: years %d", apperror.ErrInvalidAmount, years)
	}

	values := make([]float64, years+1)
	values[0] = principal
	for year := 1; year <= years; year++ {
		values[year] = values[year-1] * multiplier
	}

	return values, nil
}

func invalid(v float64) bool {
	return v < 0 || math.IsNaN(v) || math.IsInf(v, 0)
}
