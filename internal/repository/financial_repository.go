package repository

import (
	"gorm.io/gorm"
)

// GormFinancialRepository is a GORM implementation of FinancialRepository
type GormFinancialRepository struct {
	db *gorm.DB
}

// NewFinancialRepository creates a new FinancialRepository
func NewFinancialRepository(db *gorm.DB) FinancialRepository {
	return &GormFinancialRepository{db: db}
}

const reportLinesSQL = `
SELECT
	coa.account_number,
	coa.description,
	coa.account_group,
	coa.group_description,
	COALESCE((SELECT SUM(t.amount) FROM account_transactions t
		WHERE t.ship_code = @ship_code
		  AND t.account_number = coa.account_number
		  AND t.period = @period), 0) AS period_actual,
	COALESCE((SELECT SUM(b.amount) FROM budget_entries b
		WHERE b.ship_code = @ship_code
		  AND b.account_number = coa.account_number
		  AND b.period = @period), 0) AS period_budget,
	COALESCE((SELECT SUM(t.amount) FROM account_transactions t
		WHERE t.ship_code = @ship_code
		  AND t.account_number = coa.account_number
		  AND t.period BETWEEN @ytd_start AND @period), 0) AS ytd_actual,
	COALESCE((SELECT SUM(b.amount) FROM budget_entries b
		WHERE b.ship_code = @ship_code
		  AND b.account_number = coa.account_number
		  AND b.period BETWEEN @ytd_start AND @period), 0) AS ytd_budget
FROM chart_of_accounts coa
WHERE EXISTS (SELECT 1 FROM account_transactions t
		WHERE t.ship_code = @ship_code
		  AND t.account_number = coa.account_number
		  AND t.period BETWEEN @ytd_start AND @period)
   OR EXISTS (SELECT 1 FROM budget_entries b
		WHERE b.ship_code = @ship_code
		  AND b.account_number = coa.account_number
		  AND b.period BETWEEN @ytd_start AND @period)
ORDER BY coa.account_number`

// ReportLines returns one row per account with activity or budget for
// the ship in the year-to-date window ending at period. Period must
// already be validated as "YYYY-MM"; the YTD window runs from January
// of the same year through the requested month.
func (r *GormFinancialRepository) ReportLines(shipCode, period string) ([]FinancialReportRow, error) {
	ytdStart := period[:4] + "-01"

	var rows []FinancialReportRow
	err := r.db.Raw(reportLinesSQL, map[string]interface{}{
		"ship_code": shipCode,
		"period":    period,
		"ytd_start": ytdStart,
	}).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
