package dto

// FinancialReportLineDTO is one line of a financial report. The
// variance fields are always computed as actual minus budget by the
// service and never accepted from callers or storage.
type FinancialReportLineDTO struct {
	COADescription string  `json:"coa_description"`
	AccountNumber  string  `json:"account_number"`
	PeriodActual   float64 `json:"period_actual"`
	PeriodBudget   float64 `json:"period_budget"`
	PeriodVariance float64 `json:"period_variance"`
	YTDActual      float64 `json:"ytd_actual"`
	YTDBudget      float64 `json:"ytd_budget"`
	YTDVariance    float64 `json:"ytd_variance"`
}
