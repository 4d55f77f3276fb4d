package utils

import (
	"github.com/fleetops/ship-management-api/internal/constants"
)

// NormalizePageNumber floors the 1-based page number at 1.
func NormalizePageNumber(page int) int {
	if page < constants.MinPageNumber {
		return constants.MinPageNumber
	}
	return page
}

// NormalizePageSize replaces any size outside [1, MaxPageSize] with the
// default of 20.
func NormalizePageSize(size int) int {
	if size < 1 || size > constants.MaxPageSize {
		return constants.DefaultPageSize
	}
	return size
}

// TotalPages computes the page count for a record count. Zero records
// means zero pages.
func TotalPages(totalRecords int64, pageSize int) int {
	if totalRecords == 0 {
		return 0
	}
	pages := int(totalRecords) / pageSize
	if int(totalRecords)%pageSize > 0 {
		pages++
	}
	return pages
}
