package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/terminal-games/internal/investment"
)

type InvestmentCalculator struct {
	logger  *slog.Logger
	console terminal
	years   int
}

func NewInvestmentCalculator(logger *slog.Logger, cons terminal, years int) *InvestmentCalculator {
	return &InvestmentCalculator{
		logger:  logger.With("component", "investment"),
		console: cons,
		years:   years,
	}
}

// Run - prints the principal and its compounded value for every year.
func (that *InvestmentCalculator) Run(multiplier, principal float64) error {
	values, err := investment.Project(multiplier, principal, that.years)
	if err != nil {
		return fmt.Errorf("failed to project investment: %w", err)
	}

	that.logger.Debug("projected", "multiplier", multiplier, "principal", principal, "years", that.years)

	that.console.Printf("Initial: %.2f\n", values[0])
	for year, value := range values[1:] {
		that.console.Printf("Year %d: %.2f\n", year+1, value)
	}

	return that.console.Err()
}
