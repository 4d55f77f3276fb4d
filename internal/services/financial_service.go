package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fleetops/ship-management-api/internal/constants"
	"github.com/fleetops/ship-management-api/internal/dto"
	"github.com/fleetops/ship-management-api/internal/repository"
)

// FinancialService produces financial reports. Variances are always
// recomputed here as actual minus budget, never read from storage.
type FinancialService struct {
	financialRepo repository.FinancialRepository
}

// NewFinancialService creates a new FinancialService.
func NewFinancialService(financialRepo repository.FinancialRepository) *FinancialService {
	return &FinancialService{financialRepo: financialRepo}
}

// validatePeriod checks the "YYYY-MM" shape. The check is syntactic
// only: length 7 with a hyphen; "2025-13" passes.
func validatePeriod(period string) error {
	if strings.TrimSpace(period) == "" {
		return ErrPeriodRequired
	}
	if len(period) != constants.PeriodLength || !strings.Contains(period, "-") {
		return ErrInvalidPeriod
	}
	return nil
}

// GetReport returns the financial report for a ship and period. Detail
// reports carry one line per leaf account; summary reports roll the
// same lines up by account group.
func (s *FinancialService) GetReport(shipCode, period string, isSummary bool) ([]dto.FinancialReportLineDTO, error) {
	if strings.TrimSpace(shipCode) == "" {
		return nil, ErrShipCodeRequired
	}
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	rows, err := s.financialRepo.ReportLines(shipCode, period)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve report lines: %w", err)
	}

	if isSummary {
		return summarize(rows), nil
	}
	return detail(rows), nil
}

func detail(rows []repository.FinancialReportRow) []dto.FinancialReportLineDTO {
	lines := make([]dto.FinancialReportLineDTO, len(rows))
	for i, row := range rows {
		lines[i] = newReportLine(row.Description, row.AccountNumber,
			row.PeriodActual, row.PeriodBudget, row.YTDActual, row.YTDBudget)
	}
	return lines
}

// summarize rolls detail rows up by account group, ordered by group.
func summarize(rows []repository.FinancialReportRow) []dto.FinancialReportLineDTO {
	type bucket struct {
		description  string
		periodActual float64
		periodBudget float64
		ytdActual    float64
		ytdBudget    float64
	}

	buckets := make(map[string]*bucket)
	for _, row := range rows {
		b, ok := buckets[row.AccountGroup]
		if !ok {
			b = &bucket{description: row.GroupDescription}
			buckets[row.AccountGroup] = b
		}
		b.periodActual += row.PeriodActual
		b.periodBudget += row.PeriodBudget
		b.ytdActual += row.YTDActual
		b.ytdBudget += row.YTDBudget
	}

	groups := make([]string, 0, len(buckets))
	for group := range buckets {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	lines := make([]dto.FinancialReportLineDTO, len(groups))
	for i, group := range groups {
		b := buckets[group]
		lines[i] = newReportLine(b.description, group,
			b.periodActual, b.periodBudget, b.ytdActual, b.ytdBudget)
	}
	return lines
}

func newReportLine(description, accountNumber string, periodActual, periodBudget, ytdActual, ytdBudget float64) dto.FinancialReportLineDTO {
	return dto.FinancialReportLineDTO{
		COADescription: description,
		AccountNumber:  accountNumber,
		PeriodActual:   periodActual,
		PeriodBudget:   periodBudget,
		PeriodVariance: periodActual - periodBudget,
		YTDActual:      ytdActual,
		YTDBudget:      ytdBudget,
		YTDVariance:    ytdActual - ytdBudget,
	}
}
